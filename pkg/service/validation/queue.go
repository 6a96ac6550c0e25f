/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
)

// QueueItem is a token awaiting validation together with the category it was discovered under.
// Either Raw or Token is set.
type QueueItem struct {
	Category  string
	Raw       string
	Token     *claimtoken.ClaimToken
	Validated bool
	Result    *Response
}

// ClaimToken returns the item token, decoding and classifying Raw when the item was enqueued raw.
func (i *QueueItem) ClaimToken() (*claimtoken.ClaimToken, error) {
	if i.Token != nil {
		return i.Token, nil
	}

	token, err := claimtoken.Create(i.Raw)
	if err != nil {
		return nil, err
	}

	i.Token = token

	return token, nil
}

// Queue is a FIFO worklist of discovered tokens. Items are not deduplicated and are handed out
// at most once.
type Queue struct {
	items []*QueueItem
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends token under category.
func (q *Queue) Enqueue(category string, token *claimtoken.ClaimToken) {
	q.items = append(q.items, &QueueItem{Category: category, Token: token})
}

// EnqueueRaw appends a compact token under category. The token is decoded when the item is processed.
func (q *Queue) EnqueueRaw(category, raw string) {
	q.items = append(q.items, &QueueItem{Category: category, Raw: raw})
}

// DequeueNext removes and returns the front item. It returns false when the queue is empty.
func (q *Queue) DequeueNext() (*QueueItem, bool) {
	if len(q.items) == 0 {
		return nil, false
	}

	item := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]

	return item, true
}

// Len returns the number of items awaiting validation.
func (q *Queue) Len() int {
	return len(q.items)
}
