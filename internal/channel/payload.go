package channel

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// PayloadSource derives payload bytes from a secret, so that a simulation
// run can be reproduced from its secret alone.
type PayloadSource struct {
	template sha3.ShakeHash
}

func NewPayloadSource(secret string) *PayloadSource {
	return &PayloadSource{
		template: sha3.NewCShake256(nil, []byte(secret)),
	}
}

// At fills out with the payload for trial index.
func (self *PayloadSource) At(index uint64, out []byte) {
	hasher := self.template.Clone()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], index)
	hasher.Write(buf[:])
	hasher.Read(out)
}
