package ui

type Reaction int

const (
	ReactionNone Reaction = iota
	ReactionLiked
	ReactionDisliked
)

func (r Reaction) String() string {
	switch r {
	case ReactionLiked:
		return "liked"
	case ReactionDisliked:
		return "disliked"
	}
	return "none"
}

// Reactions holds the local like/dislike counters of the blog being read.
// Nothing here is sent to the blog service.
type Reactions struct {
	seeded   bool
	likes    int
	dislikes int
	reaction Reaction
}

// Seed copies the fetched counts once. Returns false if already seeded.
func (r *Reactions) Seed(likes, dislikes int) bool {
	if r.seeded {
		return false
	}
	r.seeded = true
	r.likes = max(0, likes)
	r.dislikes = max(0, dislikes)
	r.reaction = ReactionNone
	return true
}

func (r *Reactions) Reset() {
	*r = Reactions{}
}

// Like toggles a like, switching over from a dislike if there is one.
func (r *Reactions) Like() {
	if !r.seeded {
		return
	}
	switch r.reaction {
	case ReactionNone:
		r.likes++
		r.reaction = ReactionLiked
	case ReactionLiked:
		r.likes = max(0, r.likes-1)
		r.reaction = ReactionNone
	case ReactionDisliked:
		r.dislikes = max(0, r.dislikes-1)
		r.likes++
		r.reaction = ReactionLiked
	}
}

// Dislike toggles a dislike, switching over from a like if there is one.
func (r *Reactions) Dislike() {
	if !r.seeded {
		return
	}
	switch r.reaction {
	case ReactionNone:
		r.dislikes++
		r.reaction = ReactionDisliked
	case ReactionDisliked:
		r.dislikes = max(0, r.dislikes-1)
		r.reaction = ReactionNone
	case ReactionLiked:
		r.likes = max(0, r.likes-1)
		r.dislikes++
		r.reaction = ReactionDisliked
	}
}

func (r *Reactions) Seeded() bool {
	return r.seeded
}

func (r *Reactions) Likes() int {
	return r.likes
}

func (r *Reactions) Dislikes() int {
	return r.dislikes
}

func (r *Reactions) Reaction() Reaction {
	return r.reaction
}
