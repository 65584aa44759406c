// Package packet encodes and decodes DDC/CI frames.
//
// # Wire format
//
// A request sent from the host to the display:
//
//	+------+------+------------+-----------------+----------+
//	| 0x6E | 0x51 | 0x80 | len | data (<= 32 B)  | checksum |
//	+------+------+------------+-----------------+----------+
//
// The checksum is the XOR of every preceding byte.
//
// A reply as read from the bus starts at the display's source address:
//
//	+------+------------+-----------------+----------+
//	| 0x6E | 0x80 | len | data (<= 35 B)  | checksum |
//	+------+------------+-----------------+----------+
//
// Replies are normalized by prepending the host's virtual address 0x6F,
// and their checksum is computed with 0x50 in place of that first byte.
//
// # Results
//
// Every parse function returns a Result, which holds either a packet or a
// nonzero status code, never both. Malformed replies of any kind are
// reported as status.DDCData; Result.Diagnostic says which check failed.
// A zero-length reply is the DDC null message and is reported as
// status.DDCNullResponse.
package packet
