package domain

// PostingState tracks whether a sub-ledger row has been extracted into the
// General Ledger. The transition Unposted -> PostedToGL is one-way and is
// only performed by the owning ledger's MarkExtractedToGL.
type PostingState string

const (
	Unposted   PostingState = "unposted"
	PostedToGL PostingState = "posted_to_gl"
)
