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


package badger

import "github.com/poiesic/recallit/storage"

// NewMemoryRepositories creates in-memory conversation and commitment
// repositories for testing. Returns convRepo, commitRepo, backend, and error.
// Caller must close both repos and backend when done.
func NewMemoryRepositories() (storage.ConversationRepository, storage.CommitmentRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	convRepo, err := NewConversationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	commitRepo, err := NewCommitmentRepository(backend)
	if err != nil {
		convRepo.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return convRepo, commitRepo, backend, nil
}
