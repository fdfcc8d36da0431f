package reservoir

import "encoding/binary"

// packetMagic opens every framed wire packet this package emits.
const packetMagic = "EON"

// PacketReadoutUpdate is the only packet type this package currently
// knows how to build or parse: a peer's full readout, 1-bit quantized.
const PacketReadoutUpdate byte = 0x01

// packetHeaderSize is magic(3) + type(1) + seed(4) + numWeights(2).
const packetHeaderSize = 10

// EncodeReadoutBitsInto packs the sign of each weight into one bit of out,
// LSB-first: bit i of out[i/8] is 1 for a non-negative weight, 0 for
// negative. It returns the number of bytes written, or 0 if out is smaller
// than ceil(len(weights)/8) — the codec never allocates or truncates
// silently.
func EncodeReadoutBitsInto(weights []Weight, out []byte) int {
	need := (len(weights) + 7) / 8
	if len(out) < need {
		return 0
	}
	for i := 0; i < need; i++ {
		out[i] = 0
	}
	for i, w := range weights {
		if w >= 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return need
}

// EncodeReadoutBits is the allocating convenience form of
// EncodeReadoutBitsInto.
func EncodeReadoutBits(weights []Weight) []byte {
	out := make([]byte, (len(weights)+7)/8)
	EncodeReadoutBitsInto(weights, out)
	return out
}

// DecodeReadoutBitsInto restores count weights from their packed sign
// bits, each set to +magnitude or -magnitude. It returns count, or 0 if
// bits is shorter than ceil(count/8) or out is shorter than count.
func DecodeReadoutBitsInto(bits []byte, count int, magnitude Weight, out []Weight) int {
	need := (count + 7) / 8
	if len(bits) < need || len(out) < count {
		return 0
	}
	for i := 0; i < count; i++ {
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		if bits[byteIdx]&(1<<bitIdx) != 0 {
			out[i] = magnitude
		} else {
			out[i] = -magnitude
		}
	}
	return count
}

// DecodeReadoutBits is the allocating convenience form of
// DecodeReadoutBitsInto.
func DecodeReadoutBits(bits []byte, count int, magnitude Weight) []Weight {
	out := make([]Weight, count)
	if DecodeReadoutBitsInto(bits, count, magnitude, out) == 0 {
		return nil
	}
	return out
}

// Packet is a decoded framed wire packet: a peer's seed, the number of
// weights it is publishing, and the 1-bit packed payload.
type Packet struct {
	Type       byte
	Seed       uint32
	NumWeights uint16
	Payload    []byte
}

// EncodePacket frames weights behind the "EON" magic, a packet type byte,
// the publishing core's seed and the weight count, exactly as
// eon_packet_header_t laid them out on the wire.
func EncodePacket(seed uint32, weights []Weight) []byte {
	payload := EncodeReadoutBits(weights)
	buf := make([]byte, packetHeaderSize+len(payload))
	copy(buf[0:3], packetMagic)
	buf[3] = PacketReadoutUpdate
	binary.LittleEndian.PutUint32(buf[4:8], seed)
	binary.LittleEndian.PutUint16(buf[8:10], uint16(len(weights)))
	copy(buf[packetHeaderSize:], payload)
	return buf
}

// DecodePacket parses a framed wire packet, rejecting anything without the
// magic prefix or with a payload shorter than its declared weight count
// demands.
func DecodePacket(buf []byte) (*Packet, error) {
	if len(buf) < packetHeaderSize || string(buf[0:3]) != packetMagic {
		return nil, ErrInvalidArgument
	}
	p := &Packet{
		Type:       buf[3],
		Seed:       binary.LittleEndian.Uint32(buf[4:8]),
		NumWeights: binary.LittleEndian.Uint16(buf[8:10]),
	}
	need := (int(p.NumWeights) + 7) / 8
	if len(buf)-packetHeaderSize < need {
		return nil, ErrShortRead
	}
	p.Payload = buf[packetHeaderSize : packetHeaderSize+need]
	return p, nil
}
