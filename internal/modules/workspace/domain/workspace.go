package domain

type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Notices appended to the transcript by the client itself.
const (
	NetworkErrorNotice  = "⚠️ Error connecting to server."
	ScheduleReadyNotice = "✅ I have generated the door schedule."
	ScheduleEmptyNotice = "⚠️ No doors were found in the project documents."
	ScheduleErrorNotice = "⚠️ Error generating the door schedule."
)

type Source struct {
	File string
	Page int
}

type Message struct {
	Role    Role
	Content string
	Sources []Source
}

type Door struct {
	Mark       string
	Location   string
	FireRating string
	Material   string
	WidthMM    string
	HeightMM   string
}

// Reply is a decoded chat response.
type Reply struct {
	Answer  string
	Sources []Source
}

// Workspace is the state behind the dashboard: an append-only transcript,
// the latest door schedule and one pending flag shared by both actions.
//
// It is not safe for concurrent use. The owner (the UI event loop or the
// REPL) serializes every call.
type Workspace struct {
	transcript []Message
	schedule   []Door
	pending    bool
}

func New() *Workspace {
	return &Workspace{}
}

func (w *Workspace) Transcript() []Message {
	out := make([]Message, len(w.transcript))
	copy(out, w.transcript)
	return out
}

func (w *Workspace) Len() int { return len(w.transcript) }

// Schedule returns nil until an extraction has produced at least one door.
func (w *Workspace) Schedule() []Door {
	if w.schedule == nil {
		return nil
	}
	out := make([]Door, len(w.schedule))
	copy(out, w.schedule)
	return out
}

func (w *Workspace) Pending() bool { return w.pending }

// Submit records the user's message and marks a request as outstanding.
// The empty string is ignored. The returned query is text unchanged.
//
// Submit does not refuse while pending; callers that want to prevent a
// second request check Pending first.
func (w *Workspace) Submit(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	w.transcript = append(w.transcript, Message{Role: RoleUser, Content: text})
	w.pending = true
	return text, true
}

// CompleteChat appends exactly one ai message and clears the pending flag.
func (w *Workspace) CompleteChat(reply Reply, err error) {
	defer w.clearPending()
	if err != nil {
		w.transcript = append(w.transcript, Message{Role: RoleAI, Content: NetworkErrorNotice})
		return
	}
	msg := Message{Role: RoleAI, Content: reply.Answer}
	if len(reply.Sources) > 0 {
		msg.Sources = append([]Source(nil), reply.Sources...)
	}
	w.transcript = append(w.transcript, msg)
}

func (w *Workspace) BeginSchedule() {
	w.pending = true
}

// CompleteSchedule replaces the schedule only when doors is non-empty; the
// received slice becomes the schedule as-is, with no merge.
func (w *Workspace) CompleteSchedule(doors []Door, err error) {
	defer w.clearPending()
	switch {
	case err != nil:
		w.notice(ScheduleErrorNotice)
	case len(doors) == 0:
		w.notice(ScheduleEmptyNotice)
	default:
		w.schedule = append([]Door(nil), doors...)
		w.notice(ScheduleReadyNotice)
	}
}

func (w *Workspace) notice(text string) {
	w.transcript = append(w.transcript, Message{Role: RoleAI, Content: text})
}

func (w *Workspace) clearPending() {
	w.pending = false
}
