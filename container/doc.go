// Package container defines the adapter contract between the reorder engine
// and the list-like regions that own draggable items.
//
// A Container exposes geometry (frame, slot rects, hit tests) and mutations
// (move, insert, delete). Optional capabilities (Draggable, Droppable, Styler,
// Scroller, Lifecycle) are detected once with CapabilitiesOf when the
// container is registered on a drag surface.
//
// Strip is the stock adapter: a single ordered run of fixed-extent slots laid
// along one axis. NewList builds the vertical row variant and NewPager the
// horizontally paged column variant.
package container
