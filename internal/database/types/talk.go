package types

import (
	"errors"
	"time"

	"github.com/designerscolony/colony/internal/database/types/enum"
)

var ErrTalkNotFound = errors.New("chai talk not found")

// ChaiTalk represents an informal meetup listing. Single writer per
// record: only the host creates, edits, and deletes it.
type ChaiTalk struct {
	ID                 string        `bun:",pk,type:uuid"`
	Title              string        `bun:",notnull"`
	Type               enum.TalkType `bun:",notnull"`
	City               string        `bun:",nullzero"`
	Date               string        `bun:",notnull"`
	Time               string        `bun:",notnull"`
	About              string        `bun:",notnull,type:text"`
	HostedBy           string        `bun:",notnull"`
	LocationOrJoinLink string        `bun:",notnull"`
	CreatedAt          time.Time     `bun:",notnull"`
}
