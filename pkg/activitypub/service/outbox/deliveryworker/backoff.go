/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deliveryworker

import "time"

// backoffTable holds the fixed delay before each successive redelivery attempt. An item that
// fails after the last entry is marked Dead rather than queued again.
var backoffTable = []time.Duration{ //nolint:gochecknoglobals
	1 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	60 * time.Minute,
	240 * time.Minute,
	720 * time.Minute,
}

// MaxAttempts is the number of redelivery attempts permitted before an item is marked Dead.
func MaxAttempts() int {
	return len(backoffTable)
}

// InitialDelay is the delay applied to an item the first time it's queued for redelivery, i.e.
// after its original, out-of-queue delivery attempt failed.
func InitialDelay() time.Duration {
	return backoffTable[0]
}

// backoffFor returns the delay before the next attempt given the number of redelivery attempts
// already made, and whether the table has been exhausted (in which case the item is Dead).
func backoffFor(attempts int) (time.Duration, bool) {
	if attempts >= len(backoffTable) {
		return 0, true
	}

	return backoffTable[attempts], false
}
