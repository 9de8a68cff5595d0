// Package surface provides the drag surface: the shared coordinate space all
// participating containers live in, the ordered container registry, the
// single long-press recognizer and the proxy layer drawn above containers.
//
// Coordinates:
//   - canvas: host screen space, pointer events and the proxy live here
//   - content: canvas shifted by the surface scroll offset, container frames live here
//
// Without a Viewport the two spaces coincide.
package surface
