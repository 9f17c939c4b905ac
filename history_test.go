package piecetree

import "testing"

func treeContent(t *testing.T, tr *Tree) string {
	t.Helper()
	w := tr.Forward(0)
	var out []byte
	for !w.Exhausted() {
		out = append(out, w.Next())
	}
	return string(out)
}

func TestTryUndoRestoresPriorContent(t *testing.T) {
	tr := New()
	tr.Insert(0, []byte("hello"))
	// Prepending does not land at end_last_insert, so this starts a fresh
	// undo entry instead of coalescing with the first insert.
	tr.Insert(0, []byte(">>"))

	res := tr.TryUndo(0)
	if !res.Success {
		t.Fatal("TryUndo should succeed after an edit")
	}
	if got := treeContent(t, tr); got != "hello" {
		t.Errorf("content after undo = %q, want %q", got, "hello")
	}
}

func TestTryUndoOnEmptyHistoryFails(t *testing.T) {
	tr := New()
	res := tr.TryUndo(0)
	if res.Success {
		t.Error("TryUndo on a tree with no history should fail")
	}
}

func TestTryRedoReappliesUndoneEdit(t *testing.T) {
	tr := New()
	// These two inserts land end-to-end, so they coalesce into one undo
	// entry that restores all the way back to the empty document.
	tr.Insert(0, []byte("hello"))
	tr.Insert(5, []byte(" world"))
	tr.TryUndo(0)

	res := tr.TryRedo(0)
	if !res.Success {
		t.Fatal("TryRedo should succeed immediately after TryUndo")
	}
	if got := treeContent(t, tr); got != "hello world" {
		t.Errorf("content after redo = %q, want %q", got, "hello world")
	}
}

func TestNewEditAfterUndoClearsRedo(t *testing.T) {
	tr := New()
	tr.Insert(0, []byte("hello"))
	tr.Insert(5, []byte(" world"))
	tr.TryUndo(0)
	tr.Insert(0, []byte("!"))

	res := tr.TryRedo(0)
	if res.Success {
		t.Error("redo history should have been discarded by the intervening edit")
	}
}

func TestSuppressHistorySkipsUndoEntry(t *testing.T) {
	tr := New()
	tr.Insert(0, []byte("hello"), SuppressHistory())

	res := tr.TryUndo(0)
	if res.Success {
		t.Error("an edit made with SuppressHistory should not be undoable")
	}
}

func TestHeadAndSnapTo(t *testing.T) {
	tr := New()
	tr.Insert(0, []byte("hello"))
	mid := tr.Head()
	tr.Insert(5, []byte(" world"))

	if got := treeContent(t, tr); got != "hello world" {
		t.Fatalf("content before SnapTo = %q", got)
	}
	tr.SnapTo(mid)
	if got := treeContent(t, tr); got != "hello" {
		t.Errorf("content after SnapTo = %q, want %q", got, "hello")
	}
}

func TestCommitHeadGroupsSuppressedEdits(t *testing.T) {
	tr := New()
	tr.Insert(0, []byte("hello"), SuppressHistory())
	tr.CommitHead(0)
	tr.Insert(5, []byte(" world"), SuppressHistory())

	res := tr.TryUndo(0)
	if !res.Success {
		t.Fatal("TryUndo should succeed after CommitHead recorded a point")
	}
	if got := treeContent(t, tr); got != "hello" {
		t.Errorf("content after undoing to the CommitHead point = %q, want %q", got, "hello")
	}
}

func TestInsertCoalescingSharesOneUndoEntry(t *testing.T) {
	tr := New()
	tr.Insert(0, []byte("a"))
	tr.Insert(1, []byte("b"))
	tr.Insert(2, []byte("c"))

	res := tr.TryUndo(0)
	if !res.Success {
		t.Fatal("TryUndo should succeed")
	}
	if got := treeContent(t, tr); got != "" {
		t.Errorf("three adjacent single-character inserts should undo as one step, got %q", got)
	}
}
