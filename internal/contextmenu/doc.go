// Package contextmenu implements the per-cell context menu of a data grid.
//
// A Context is attached once per grid. It owns the item Registry, the menu
// state machine (Controller), the outside-interaction Watcher and the
// Dispatcher that runs item actions. All mutation happens on the caller's
// event loop; the only deferred work is the show notification, which runs
// through the Scheduler supplied at attach time.
//
// State flow:
//   - A trigger on a cell calls Controller.RequestOpen. The enablement gate
//     (grid flag, column and row overrides, at least one shown item) must
//     pass, the position is written, the state flips to open and a show
//     notification is deferred to the next turn.
//   - Opening a different cell while open closes the previous cell first, so
//     hide for the old cell is always observed before show for the new one.
//   - Blur, pointer-down outside the menu region and the escape key close
//     the menu through the Watcher. Running an item action closes it unless
//     the item is marked LeaveOpen.
package contextmenu
