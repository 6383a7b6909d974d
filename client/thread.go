package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPollInterval matches the UI's fixed 5-second refresh cadence.
const DefaultPollInterval = 5 * time.Second

// ThreadMessage is one displayed entry. Pending entries carry a locally
// generated id until the server-confirmed record replaces them.
type ThreadMessage struct {
	Message
	Pending bool `json:"pending,omitempty"`
}

// ThreadController drives one open conversation: it appends optimistic
// placeholders on Send, reconciles them against send responses, and polls
// the thread endpoint to pick up counterpart messages.
//
// Per in-flight send: Pending (placeholder shown) -> Confirmed (replaced by
// the server record) or Failed (placeholder removed, content restored to the
// compose buffer). Multiple sends may be pending at once; each resolves
// independently by its own temporary id.
type ThreadController struct {
	api           *Client
	counterpartID uuid.UUID
	pollInterval  time.Duration

	// OnUpdate fires after every state change. OnSendFailed surfaces one
	// failed send. OnLoadFailed fires only when the initial fetch fails,
	// so the UI can show an error panel in place of the list; later poll
	// failures are swallowed to keep the last good state on screen. All
	// are optional and must be set before Start.
	OnUpdate     func()
	OnSendFailed func(content string, err error)
	OnLoadFailed func(err error)

	mu            sync.Mutex
	messages      []ThreadMessage
	currentUserID uuid.UUID
	loaded        bool
	compose       string

	cancel context.CancelFunc
	done   chan struct{}
}

func NewThreadController(api *Client, counterpartID uuid.UUID) *ThreadController {
	return &ThreadController{
		api:           api,
		counterpartID: counterpartID,
		pollInterval:  DefaultPollInterval,
	}
}

// SetPollInterval must be called before Start.
func (tc *ThreadController) SetPollInterval(d time.Duration) {
	tc.pollInterval = d
}

// Start performs the initial fetch and begins polling. The controller stops
// when ctx is cancelled or Close is called.
func (tc *ThreadController) Start(ctx context.Context) {
	ctx, tc.cancel = context.WithCancel(ctx)
	tc.done = make(chan struct{})

	go func() {
		defer close(tc.done)

		tc.refresh(ctx)

		ticker := time.NewTicker(tc.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tc.refresh(ctx)
			}
		}
	}()
}

// Close tears the controller down and cancels any in-flight poll.
func (tc *ThreadController) Close() {
	if tc.cancel != nil {
		tc.cancel()
	}
	if tc.done != nil {
		<-tc.done
	}
}

// Loading reports whether the first fetch for this counterpart is still
// outstanding; later polls refresh silently to avoid flicker.
func (tc *ThreadController) Loading() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return !tc.loaded
}

// Messages returns a snapshot of the displayed list: server-ordered history
// followed by still-pending optimistic entries in submission order.
func (tc *ThreadController) Messages() []ThreadMessage {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	out := make([]ThreadMessage, len(tc.messages))
	copy(out, tc.messages)
	return out
}

// CurrentUserID is the viewer id the server resolved, for self vs.
// counterpart authorship checks without a second round trip.
func (tc *ThreadController) CurrentUserID() uuid.UUID {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.currentUserID
}

// ComposeText returns and clears the content restored by a failed send.
func (tc *ThreadController) ComposeText() string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	content := tc.compose
	tc.compose = ""
	return content
}

// Send appends an optimistic placeholder immediately and issues the network
// send in the background. Sends are not serialized: confirmations and
// failures resolve out of order relative to submission.
func (tc *ThreadController) Send(ctx context.Context, content string) uuid.UUID {
	tempID := uuid.New()

	tc.mu.Lock()
	tc.messages = append(tc.messages, ThreadMessage{
		Message: Message{
			ID:         tempID,
			SenderID:   tc.currentUserID,
			ReceiverID: tc.counterpartID,
			Content:    content,
			CreatedAt:  time.Now(),
		},
		Pending: true,
	})
	tc.mu.Unlock()
	tc.notify()

	go func() {
		msg, err := tc.api.SendMessage(ctx, tc.counterpartID, content)
		if err != nil {
			tc.resolveFailed(tempID, content, err)
			return
		}
		tc.resolveConfirmed(tempID, msg)
	}()

	return tempID
}

// resolveConfirmed swaps the placeholder for the authoritative record. If a
// poll already delivered the server copy, the placeholder is dropped instead
// so the message never appears twice.
func (tc *ThreadController) resolveConfirmed(tempID uuid.UUID, msg *Message) {
	tc.mu.Lock()
	alreadyPolled := false
	for i := range tc.messages {
		if !tc.messages[i].Pending && tc.messages[i].ID == msg.ID {
			alreadyPolled = true
			break
		}
	}
	for i := range tc.messages {
		if tc.messages[i].ID != tempID {
			continue
		}
		if alreadyPolled {
			tc.messages = append(tc.messages[:i], tc.messages[i+1:]...)
		} else {
			tc.messages[i] = ThreadMessage{Message: *msg}
		}
		break
	}
	tc.mu.Unlock()
	tc.notify()
}

// resolveFailed removes the placeholder and restores the typed content.
func (tc *ThreadController) resolveFailed(tempID uuid.UUID, content string, err error) {
	tc.mu.Lock()
	for i := range tc.messages {
		if tc.messages[i].ID == tempID {
			tc.messages = append(tc.messages[:i], tc.messages[i+1:]...)
			break
		}
	}
	tc.compose = content
	tc.mu.Unlock()
	tc.notify()

	if tc.OnSendFailed != nil {
		tc.OnSendFailed(content, err)
	}
}

// refresh fetches the thread and merges it into local state. Failures are
// swallowed: a transient blip must not wipe an otherwise-working view.
func (tc *ThreadController) refresh(ctx context.Context) {
	resp, err := tc.api.FetchThread(ctx, tc.counterpartID)
	if err != nil {
		tc.mu.Lock()
		firstLoad := !tc.loaded
		tc.loaded = true
		tc.mu.Unlock()
		if firstLoad {
			if tc.OnLoadFailed != nil {
				tc.OnLoadFailed(err)
			}
			tc.notify()
		}
		return
	}
	tc.merge(resp)
	tc.notify()
}

// merge reconciles a poll result with local state by message id: the server
// copy wins for anything it knows about, and still-pending optimistic
// entries the server has not returned yet are kept. A send confirmed
// between two polls is therefore never duplicated or transiently dropped.
func (tc *ThreadController) merge(resp *ThreadResponse) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.currentUserID = resp.CurrentUserID
	tc.loaded = true

	serverIDs := make(map[uuid.UUID]struct{}, len(resp.Messages))
	merged := make([]ThreadMessage, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		serverIDs[msg.ID] = struct{}{}
		merged = append(merged, ThreadMessage{Message: msg})
	}

	for _, local := range tc.messages {
		if !local.Pending {
			continue
		}
		if _, ok := serverIDs[local.ID]; ok {
			continue
		}
		merged = append(merged, local)
	}

	tc.messages = merged
}

func (tc *ThreadController) notify() {
	if tc.OnUpdate != nil {
		tc.OnUpdate()
	}
}
