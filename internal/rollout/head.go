package rollout

import (
	"bufio"
	"os"

	json "github.com/goccy/go-json"
)

const maxLineSize = 10 * 1024 * 1024

// Head is the bounded prefix of a rollout file plus the flags derived while
// reading it. Records list the session meta and message items seen before the
// reader stopped; user-message event markers only flip SawUserEvent.
type Head struct {
	Meta         *SessionMeta
	Messages     []ResponseItem
	SawMeta      bool
	SawUserEvent bool
	FirstSeen    string
	LastSeen     string
}

// ReadHead streams at most limit records from the start of the file, stopping
// earlier once both a session-meta record and a user event were observed.
// Blank lines and lines that fail to decode are skipped; they do not count
// toward the limit. Concurrent appends only ever truncate the trailing line,
// which is skipped the same way.
func ReadHead(path string, limit int) (*Head, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := &Head{}
	records := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec Line
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}

		switch rec.Type {
		case lineTypeSessionMeta:
			var meta SessionMeta
			if err := json.Unmarshal(rec.Payload, &meta); err != nil {
				continue
			}
			if head.Meta == nil {
				head.Meta = &meta
			}
			head.SawMeta = true
			head.noteTimestamp(rec.Timestamp)
			records++

		case lineTypeResponseItem:
			var item ResponseItem
			if err := json.Unmarshal(rec.Payload, &item); err != nil {
				continue
			}
			head.Messages = append(head.Messages, item)
			head.noteTimestamp(rec.Timestamp)
			records++

		case lineTypeEventMsg:
			var evt EventPayload
			if err := json.Unmarshal(rec.Payload, &evt); err != nil {
				continue
			}
			if evt.Type == eventUserMessage {
				head.SawUserEvent = true
			}

		default:
			// unknown record kinds are tolerated for forward compatibility
		}

		if records >= limit || (head.SawMeta && head.SawUserEvent) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return head, nil
}

func (h *Head) noteTimestamp(ts string) {
	if ts == "" {
		return
	}
	if h.FirstSeen == "" {
		h.FirstSeen = ts
	}
	h.LastSeen = ts
}
