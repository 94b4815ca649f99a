// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/poiesic/recallit/core"
)

var searchHistoryMUS = ord.NewSliceSer[core.SearchHistoryEntry](core.SearchHistoryEntryMUS)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalConversationRecord serializes a ConversationRecord to bytes.
func MarshalConversationRecord(record *core.ConversationRecord) []byte {
	buf := make([]byte, core.ConversationRecordMUS.Size(*record))
	core.ConversationRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalConversationRecord deserializes a ConversationRecord from bytes.
func UnmarshalConversationRecord(data []byte) (*core.ConversationRecord, error) {
	record, _, err := core.ConversationRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalCommitmentRecord serializes a CommitmentRecord to bytes.
func MarshalCommitmentRecord(record *core.CommitmentRecord) []byte {
	buf := make([]byte, core.CommitmentRecordMUS.Size(*record))
	core.CommitmentRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalCommitmentRecord deserializes a CommitmentRecord from bytes.
func UnmarshalCommitmentRecord(data []byte) (*core.CommitmentRecord, error) {
	record, _, err := core.CommitmentRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalSearchHistory serializes a search history list to one blob.
func MarshalSearchHistory(entries []core.SearchHistoryEntry) []byte {
	buf := make([]byte, searchHistoryMUS.Size(entries))
	searchHistoryMUS.Marshal(entries, buf)
	return buf
}

// UnmarshalSearchHistory deserializes a search history list from a blob.
func UnmarshalSearchHistory(data []byte) ([]core.SearchHistoryEntry, error) {
	entries, _, err := searchHistoryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
