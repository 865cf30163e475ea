package review

import (
	"errors"
	"strings"

	"hisitter/internal/pkg/errs"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating  = errs.Mark(errors.New("rating must be between 1 and 5"), errs.ErrDomainValidation)
	ErrCommentTooLong = errs.Mark(errors.New("comment exceeds maximum length"), errs.ErrDomainValidation)
)

// Rating is a whole-star score from a client.
type Rating int

func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return 0, ErrInvalidRating
	}
	return Rating(value), nil
}

func (r Rating) Int() int {
	return int(r)
}

// Comment is the free-text body of a review. Empty is allowed; the
// rating alone is a valid review.
type Comment string

func NewComment(value string) (Comment, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return Comment(value), nil
}

func (c Comment) String() string {
	return string(c)
}
