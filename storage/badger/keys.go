package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/recallit/core"
)

// Key prefixes for different data types
const (
	convRecordPrefix   = "convrec"
	convDatePrefix     = "convrecd"
	convIDSeq          = "convrecseq"
	commitRecordPrefix = "comrec"
	commitConvPrefix   = "comrecc"
	commitIDSeq        = "comrecseq"
	settingPrefix      = "setting"
)

// makeConversationKey generates a key for a conversation record by ID.
func makeConversationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", convRecordPrefix, id))
}

// makeConversationDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeConversationDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := convDatePrefix + ":"
	buf := make([]byte, len(prefix)+16) // 8 bytes for timestamp + 8 bytes for ID
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialConversationDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialConversationDateKey(timestamp time.Time) []byte {
	prefix := convDatePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeCommitmentKey generates a key for a commitment record by ID.
func makeCommitmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", commitRecordPrefix, id))
}

// makeCommitmentConvKey generates a composite key for the conversation index.
// Format: prefix:conversationID:commitmentID
func makeCommitmentConvKey(conversationID, commitmentID core.ID) []byte {
	prefix := commitConvPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(conversationID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(commitmentID))
	return buf
}

// makePartialCommitmentConvKey generates a partial key for conversation queries.
// Format: prefix:conversationID
func makePartialCommitmentConvKey(conversationID core.ID) []byte {
	prefix := commitConvPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(conversationID))
	return buf
}

// makeSettingKey generates a key for the generic key/value settings area.
func makeSettingKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", settingPrefix, name))
}
