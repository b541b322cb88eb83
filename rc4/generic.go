package rc4

import "github.com/fengxuway/codebreaker-go/internal/api"

func init() {
	api.Register(genericImpl{})
}

// genericImpl is the portable RC4 key-schedule (KSA) implementation.
type genericImpl struct{}

func (genericImpl) Name() string { return "generic" }

func (genericImpl) KeySchedule(key []byte, state *[256]byte) {
	for i := 0; i < 256; i++ {
		state[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j += state[i] + key[i%len(key)]
		state[i], state[j] = state[j], state[i]
	}
}
