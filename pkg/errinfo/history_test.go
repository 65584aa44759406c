package errinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

func TestRetryHistory(t *testing.T) {
	h := NewRetryHistory()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "", h.String())

	h.Add(status.DDCData)
	h.Add(status.DDCData)
	h.Add(status.DDCNullResponse)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "DDCRC_DDC_DATA(x2), DDCRC_NULL_RESPONSE", h.String())

	h.Clear()
	assert.Equal(t, 0, h.Len())
}

func TestRetryHistoryPanicsWhenFull(t *testing.T) {
	h := NewRetryHistory()
	for i := 0; i < MaxMaxTries; i++ {
		h.Add(status.DDCData)
	}
	assert.Panics(t, func() { h.Add(status.DDCData) })
}

func TestRetryHistoryAll(t *testing.T) {
	h := NewRetryHistory()
	assert.False(t, h.All(status.DDCReadAllZero))
	h.Add(status.DDCReadAllZero)
	h.Add(status.DDCReadAllZero)
	assert.True(t, h.All(status.DDCReadAllZero))
	h.Add(status.DDCData)
	assert.False(t, h.All(status.DDCReadAllZero))
}

func TestRetryHistoryMatchesErrorInfo(t *testing.T) {
	sequences := [][]status.Code{
		{},
		{status.DDCData},
		{status.DDCData, status.DDCReadAllZero, status.DDCReadAllZero, status.Errno(5)},
		{status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse,
			status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse,
			status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse,
			status.DDCNullResponse, status.DDCNullResponse, status.DDCNullResponse},
	}
	for _, seq := range sequences {
		h := NewRetryHistory()
		for _, c := range seq {
			h.Add(c)
		}
		e := NewRetries(seq, "f", "g")

		assert.Equal(t, h.Codes(), e.CauseCodes())
		assert.Equal(t, h.String(), e.CausesString())
		assert.Equal(t, e.CauseCodes(), h.ToErrorInfo("f", "g").CauseCodes())
	}
}
