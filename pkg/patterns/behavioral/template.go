package behavioral

// Steps defines the customizable steps of the template method's fixed
// sequence. Step1 and Step2 must be provided; Step3 has a default in
// DefaultSteps that implementations may override.
type Steps interface {
	Step1() string
	Step2() string
	Step3() string
}

// DefaultSteps supplies the stock Step3. Embed it to inherit the
// default and override only the steps that differ.
type DefaultSteps struct{}

// Step3 is the default final step.
func (DefaultSteps) Step3() string { return "step3" }

// Execute is the template method: it runs the fixed step sequence and
// returns each step's output in order. Implementations customize
// individual steps without altering the sequence.
func Execute(s Steps) []string {
	return []string{s.Step1(), s.Step2(), s.Step3()}
}

// FirstTask customizes steps 1 and 2 and keeps the default step 3.
type FirstTask struct {
	DefaultSteps
}

// Step1 implements Steps.
func (FirstTask) Step1() string { return "first step1" }

// Step2 implements Steps.
func (FirstTask) Step2() string { return "first step2" }

// SecondTask customizes every step, including the default one.
type SecondTask struct {
	DefaultSteps
}

// Step1 implements Steps.
func (SecondTask) Step1() string { return "second step1" }

// Step2 implements Steps.
func (SecondTask) Step2() string { return "second step2" }

// Step3 overrides the default final step.
func (SecondTask) Step3() string { return "second step3" }
