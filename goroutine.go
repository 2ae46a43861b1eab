// FILE: goroutine.go
package flog

import (
	"runtime"
)

// threadTagModulus keeps the thread tag field short. Collisions across
// distinct goroutines are acceptable; the tag is a diagnostic aid, not a
// unique key.
const threadTagModulus = 10000

// mainGoroutineID is captured during package initialization, which the
// runtime performs on the main goroutine.
var mainGoroutineID = goroutineID()

// goroutineID parses the current goroutine's id from the stack header
// ("goroutine N [running]:"). The runtime does not expose it directly.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	const prefix = len("goroutine ")
	if n <= prefix {
		return 0
	}
	var id uint64
	for _, c := range buf[prefix:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

// threadTag reduces a goroutine id to the tag printed in the log line:
// 0 for the main goroutine, id modulo 10000 otherwise.
func threadTag(id uint64) uint64 {
	if id == mainGoroutineID {
		return 0
	}
	return id % threadTagModulus
}
