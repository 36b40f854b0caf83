package behavioral

// Command captures a receiver and one operation to perform on it.
type Command interface {
	Execute() string
}

// FirstReceiver is a receiver with one action.
type FirstReceiver struct{}

// Action performs the receiver's operation.
func (*FirstReceiver) Action() string { return "action 1" }

// SecondReceiver is another receiver with one action.
type SecondReceiver struct{}

// Action performs the receiver's operation.
func (*SecondReceiver) Action() string { return "action 2" }

// FirstCommand invokes FirstReceiver.Action.
type FirstCommand struct {
	receiver *FirstReceiver
}

// NewFirstCommand binds the command to its receiver.
func NewFirstCommand(r *FirstReceiver) *FirstCommand {
	return &FirstCommand{receiver: r}
}

// Execute implements Command.
func (c *FirstCommand) Execute() string {
	return c.receiver.Action()
}

// SecondCommand invokes SecondReceiver.Action.
type SecondCommand struct {
	receiver *SecondReceiver
}

// NewSecondCommand binds the command to its receiver.
func NewSecondCommand(r *SecondReceiver) *SecondCommand {
	return &SecondCommand{receiver: r}
}

// Execute implements Command.
func (c *SecondCommand) Execute() string {
	return c.receiver.Action()
}

// Invoker holds an ordered queue of commands and executes them in
// insertion order on demand.
type Invoker struct {
	commands []Command
}

// Add appends a command to the queue.
func (i *Invoker) Add(c Command) {
	i.commands = append(i.commands, c)
}

// ExecuteAll runs every queued command in insertion order and returns
// their outputs.
func (i *Invoker) ExecuteAll() []string {
	out := make([]string, 0, len(i.commands))
	for _, c := range i.commands {
		out = append(out, c.Execute())
	}
	return out
}
