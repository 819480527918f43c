// Package ui contains the Bubble Tea program that renders the data grid and
// its per-cell context menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys in input.go, the mouse in mouse.go, reloads in
//     backend.go).
//   - Keyboard, pointer and focus messages are also published on the context
//     menu's signal bus before anything else sees them, so the dismissal
//     watcher decides first whether an open menu survives the event. A right
//     press on a cell is the exception: it is the trigger itself.
//   - View marks the popup with bubblezone and scans the frame; pointer
//     lookups inside the popup use the zones of the last frame.
//   - finishUpdate runs after every handler: it closes a menu whose cell left
//     the table, re-lays the popup and schedules a flushMsg when the menu
//     deferred work (the show notification) to the next turn.
//
// State ownership:
//   - The grid (internal/grid) owns the table, the cursor and the viewport.
//   - The menu state lives in internal/contextmenu; Popup only mirrors it and
//     keeps the type-to-filter list from internal/ui/state.
//   - Action outcomes travel over internal/ui/command and land in the status
//     line on the next turn.
package ui
