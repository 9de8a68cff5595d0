package render

// Priority determines layer order, lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityLanes
	PriorityHeader
	PriorityProxy
	PriorityUI
)
