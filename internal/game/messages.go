package game

// NoticeKind controls how a notification is styled.
type NoticeKind uint8

const (
	NoticeInfo    NoticeKind = iota // plain status text
	NoticeTask                      // a mission step finished
	NoticeMission                   // a whole mission finished
	NoticeWarning                   // something went wrong, e.g. a failed save
)

// Notifier receives gameplay notifications.
type Notifier interface {
	Notify(title, body string, kind NoticeKind)
}

// Notice is a single popup.
type Notice struct {
	Title   string
	Lines   []string // body, wrapped
	Kind    NoticeKind
	Created uint64 // tick the notice was raised on
}

// Popup lifetime at 60 TPS.
const noticeTicks = 12 * 60

const noticeWidth = 40

// Notifications is a bounded FIFO of popups.
type Notifications struct {
	Notices []Notice
	maxSize int
	now     uint64
}

// NewNotifications keeps the most recent maxSize notices.
func NewNotifications(maxSize int) *Notifications {
	return &Notifications{
		Notices: make([]Notice, 0, maxSize),
		maxSize: maxSize,
	}
}

// Notify appends a notice, evicting the oldest if full.
func (l *Notifications) Notify(title, body string, kind NoticeKind) {
	n := Notice{Title: title, Lines: wrapText(body, noticeWidth), Kind: kind, Created: l.now}
	if len(l.Notices) >= l.maxSize {
		copy(l.Notices, l.Notices[1:])
		l.Notices[len(l.Notices)-1] = n
	} else {
		l.Notices = append(l.Notices, n)
	}
}

// Advance moves the notification clock forward one tick and drops
// notices that have been on screen long enough.
func (l *Notifications) Advance() {
	l.now++
	keep := l.Notices[:0]
	for _, n := range l.Notices {
		if l.now-n.Created < noticeTicks {
			keep = append(keep, n)
		}
	}
	l.Notices = keep
}

// Recent returns the last n notices (or fewer if the list is shorter).
func (l *Notifications) Recent(n int) []Notice {
	if n > len(l.Notices) {
		n = len(l.Notices)
	}
	return l.Notices[len(l.Notices)-n:]
}

// wrapText splits text into lines no longer than maxWidth.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	var result []string
	words := splitWords(s)
	if len(words) == 0 {
		return []string{""}
	}
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	if line != "" {
		result = append(result, line)
	}
	return result
}

// splitWords splits on whitespace.
func splitWords(s string) []string {
	var words []string
	word := ""
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		} else {
			word += string(r)
		}
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}
