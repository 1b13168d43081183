package engine

// Trigger names as shown in the host's key binding menu.
const (
	TriggerAddStack    = "KSH: Add Stack"
	TriggerClearStacks = "KSH: Clear Stacks"
	TriggerUsePylon    = "Pylon: Use Nearest"
	TriggerDropPylon   = "Pylon: Drop Anchor Here"
	TriggerClearUber   = "Clear Uber Unique"
)

// Trigger is a named user action the host binds to a key.
type Trigger struct {
	Name string
	Run  func()
}

// Triggers returns every user action in menu order.
func (e *Engine) Triggers() []Trigger {
	return []Trigger{
		{Name: TriggerAddStack, Run: e.AddStack},
		{Name: TriggerClearStacks, Run: e.ClearStacks},
		{Name: TriggerUsePylon, Run: e.UseNearestPylon},
		{Name: TriggerDropPylon, Run: e.DropPylon},
		{Name: TriggerClearUber, Run: e.ClearUber},
	}
}

// Trigger runs the named action. Returns false for an unknown name.
func (e *Engine) Trigger(name string) bool {
	for _, t := range e.Triggers() {
		if t.Name == name {
			t.Run()
			return true
		}
	}
	return false
}
