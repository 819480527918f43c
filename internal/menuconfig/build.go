package menuconfig

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
)

// Default is the menu used when no file is configured.
func Default() *File {
	return &File{Items: []ItemSpec{
		{Label: "Copy cell", Group: "Clipboard", Action: ActionCopyCell},
		{Label: "Copy row", Group: "Clipboard", Action: ActionCopyRow},
		{Label: "Toggle mark", Group: "Row", Action: ActionToggleMark, LeaveOpen: true},
		{Label: "Delete row", Group: "Row", Action: ActionDeleteRow},
		{Label: "Hide column", Group: "Columns", Action: ActionHideColumn},
		{Label: "Show all columns", Group: "Columns", Action: ActionShowColumns},
	}}
}

// Build turns f into menu items in file order. Outcomes of the actions are
// sent to rep.
func Build(f *File, rep Reporter) ([]*contextmenu.Item, error) {
	if f == nil {
		return nil, nil
	}
	eval := NewEvaluator()
	items := make([]*contextmenu.Item, 0, len(f.Items))
	for i, spec := range f.Items {
		b, ok := builtins[spec.Action]
		if !ok {
			return nil, fmt.Errorf("item %d (%s): unknown action %q (want one of %s)",
				i+1, spec.Label, spec.Action, strings.Join(Actions(), ", "))
		}
		shown, err := eval.Compile(spec.Shown)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s) shown: %w", i+1, spec.Label, err)
		}
		active, err := eval.Compile(spec.Active)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s) active: %w", i+1, spec.Label, err)
		}
		items = append(items, &contextmenu.Item{
			Title:     spec.Label,
			GroupName: spec.Group,
			Action:    b.action(rep),
			Shown:     b.gate(shown),
			Active:    active,
			LeaveOpen: spec.LeaveOpen,
		})
	}
	return items, nil
}

// LoadItems loads path, or the default menu when path is empty, and builds
// its items.
func LoadItems(path string, rep Reporter) ([]*contextmenu.Item, error) {
	f := Default()
	if path != "" {
		var err error
		if f, err = Load(path); err != nil {
			return nil, err
		}
	}
	return Build(f, rep)
}
