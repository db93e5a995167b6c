// Package widgets provides the controllers that sit between application
// widgets and the layout engine.
//
// Widgets are constructed as struct literals and talk to the engine through
// a handful of primitives: measure, place and register for reflow.
//
//	tb := &widgets.Toolbar{Engine: eng, El: node, Side: dock.Top}
//	if err := tb.Mount(); err != nil {
//	    return err
//	}
//	tb.Toggle() // hides the toolbar and schedules one reflow
//
// # Floating elements
//
// Tooltip and ContextMenu resolve their position synchronously when shown.
// They draw into shared overlay elements owned by a Layers service, which
// creates each layer the first time it is asked for and keeps it for the
// life of the process.
//
// # Pointer interaction
//
// Drag and ResizeHandle write position and size on every pointer event.
// They do not go through the reflow scheduler.
package widgets
