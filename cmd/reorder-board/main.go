package main

import (
	"github.com/lixenwraith/reorder/app"
	"github.com/lixenwraith/reorder/core"
)

func main() {
	// Panic recovery: the restore hook puts the terminal back before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	app.Execute()
}
