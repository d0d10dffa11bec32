package interfaces

// RegUsage lists the registers one instruction reads and writes, as bit
// masks over R0..R15 and P0..P15.
type RegUsage struct {
	InGR, OutGR uint16
	InSR, OutSR uint16
}

// ProfileSink receives every decoded instruction. num is the stable
// numeric instruction identity.
type ProfileSink interface {
	Record(pc uint32, num int, usage RegUsage)
}
