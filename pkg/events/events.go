/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package events

import (
	"github.com/google/uuid"
)

// RevListFinishedTopic is published once a revocation list update has been
// acknowledged by the ledger.
const RevListFinishedTopic = "anoncreds::revocation-list::finished"

type Event struct {
	ID      string      `json:"id"`
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload"`
}

type RevListFinishedPayload struct {
	RevRegDefID string `json:"rev_reg_id"`
	Revoked     []int  `json:"revoked"`
}

func NewRevListFinished(revRegDefID string, revoked []int) Event {
	idx := make([]int, len(revoked))
	copy(idx, revoked)

	return Event{
		ID:    uuid.New().String(),
		Topic: RevListFinishedTopic,
		Payload: &RevListFinishedPayload{
			RevRegDefID: revRegDefID,
			Revoked:     idx,
		},
	}
}
