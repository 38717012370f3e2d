package game

import (
	"strings"
	"testing"
)

func TestNotificationsBounded(t *testing.T) {
	n := NewNotifications(3)
	for _, title := range []string{"a", "b", "c", "d"} {
		n.Notify(title, "body", NoticeInfo)
	}
	if len(n.Notices) != 3 || n.Notices[0].Title != "b" || n.Notices[2].Title != "d" {
		t.Fatalf("notices = %+v", n.Notices)
	}
	if got := n.Recent(2); len(got) != 2 || got[1].Title != "d" {
		t.Fatalf("Recent = %+v", got)
	}
	if got := n.Recent(10); len(got) != 3 {
		t.Fatalf("Recent(10) len = %d", len(got))
	}
}

func TestNotificationsExpire(t *testing.T) {
	n := NewNotifications(4)
	n.Notify("old", "", NoticeInfo)
	for i := 0; i < noticeTicks-1; i++ {
		n.Advance()
	}
	n.Notify("new", "", NoticeInfo)
	if len(n.Notices) != 2 {
		t.Fatalf("expired too early: %d", len(n.Notices))
	}
	n.Advance()
	if len(n.Notices) != 1 || n.Notices[0].Title != "new" {
		t.Fatalf("after expiry: %+v", n.Notices)
	}
}

func TestWrapText(t *testing.T) {
	s := "Transport refugees to safety on the planet Epsilon-Prime before the blockade closes."
	lines := wrapText(s, 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Fatalf("line %q longer than 20", l)
		}
	}
	if got := strings.Join(lines, " "); got != s {
		t.Fatalf("rejoined = %q", got)
	}
	if got := wrapText("short", 20); len(got) != 1 || got[0] != "short" {
		t.Fatalf("short = %v", got)
	}
}
