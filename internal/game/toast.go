package game

// ToastKind selects how a toast is styled.
type ToastKind int

const (
	ToastGood ToastKind = iota
	ToastBad
)

// DefaultToastDuration is how long a toast stays up, in seconds.
const DefaultToastDuration = 2.0

// Toast is a short feedback message counted down with frame time.
type Toast struct {
	Text      string
	Kind      ToastKind
	remaining float64
	duration  float64
}

// NewToast creates an empty toast whose messages last duration seconds.
func NewToast(duration float64) *Toast {
	return &Toast{duration: duration}
}

// Show replaces the current message and restarts the countdown.
func (t *Toast) Show(text string, kind ToastKind) {
	t.Text = text
	t.Kind = kind
	t.remaining = t.duration
}

// ShowOutcome shows the message for a resolved submission.
func (t *Toast) ShowOutcome(o Outcome) {
	switch o {
	case OutcomeCorrect:
		t.Show("Correct!", ToastGood)
	case OutcomeDuplicate:
		t.Show("Already used!", ToastBad)
	case OutcomeWrong:
		t.Show("Wrong!", ToastBad)
	}
}

// Update counts the toast down by dt and clears it once expired.
func (t *Toast) Update(dt float64) {
	if t.Text == "" {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.Clear()
	}
}

// Visible reports whether a message is showing.
func (t *Toast) Visible() bool {
	return t.Text != ""
}

// Remaining returns the seconds left before the message disappears.
func (t *Toast) Remaining() float64 {
	return max(0, t.remaining)
}

// Clear hides the message.
func (t *Toast) Clear() {
	t.Text = ""
	t.remaining = 0
}
