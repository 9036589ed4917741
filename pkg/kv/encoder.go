package kv

import (
	"github.com/kelindar/binary"
)

func encodeRoute(sr StoredRoute) ([]byte, error) {
	bb := encode(sr)

	bbCompressed, err := compress(bb)
	if err != nil {
		return nil, err
	}

	return bbCompressed, nil
}

func loadRoute(bbCompressed []byte) (StoredRoute, error) {
	bb, err := decompress(bbCompressed)
	if err != nil {
		return StoredRoute{}, err
	}

	return decode(bb)
}

func encode(sr StoredRoute) []byte {
	encoded, _ := binary.Marshal(sr)
	return encoded
}

func decode(bb []byte) (StoredRoute, error) {
	var sr StoredRoute
	err := binary.Unmarshal(bb, &sr)
	return sr, err
}
