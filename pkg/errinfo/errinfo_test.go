package errinfo

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

func TestNewRetries(t *testing.T) {
	codes := []status.Code{status.DDCData, status.DDCData, status.DDCReadAllZero, status.DDCData}
	e := NewRetries(codes, "write_read", "write_read_with_retry")

	assert.Equal(t, status.DDCRetries, e.Code)
	assert.Equal(t, "write_read_with_retry", e.Func)
	require.Len(t, e.Causes, 4)
	for i, c := range e.Causes {
		assert.Equal(t, codes[i], c.Code)
		assert.Equal(t, "write_read", c.Func)
		assert.Empty(t, c.Causes)
	}
}

func TestNewRetriesPanicsBeyondCeiling(t *testing.T) {
	codes := make([]status.Code, MaxMaxTries+1)
	assert.Panics(t, func() { NewRetries(codes, "a", "b") })
}

func TestAddCauseGrows(t *testing.T) {
	e := New(status.DDCMultiFeatureError, "get_multiple")
	for i := 0; i < 3*MaxMaxTries; i++ {
		e.AddCause(New(status.DDCData, "get_one"))
	}
	assert.Len(t, e.Causes, 3*MaxMaxTries)

	e.AddCause(nil)
	assert.Len(t, e.Causes, 3*MaxMaxTries)
}

func TestCausesString(t *testing.T) {
	tests := []struct {
		name  string
		codes []status.Code
		want  string
	}{
		{"empty", nil, ""},
		{"single", []status.Code{status.DDCData}, "DDCRC_DDC_DATA"},
		{
			name:  "runs collapsed",
			codes: []status.Code{status.DDCData, status.DDCData, status.DDCData, status.DDCNullResponse, status.DDCData},
			want:  "DDCRC_DDC_DATA(x3), DDCRC_NULL_RESPONSE, DDCRC_DDC_DATA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewRetries(tt.codes, "f", "g")
			assert.Equal(t, tt.want, e.CausesString())
		})
	}
}

func TestSummary(t *testing.T) {
	leaf := New(status.DDCData, "parse")
	assert.Equal(t, "ErrorInfo[DDCRC_DDC_DATA(-3031): invalid DDC data in parse]", leaf.Summary())

	e := NewRetries([]status.Code{status.DDCData, status.DDCData}, "write_read", "get_vcp")
	assert.Equal(t,
		"ErrorInfo[DDCRC_RETRIES(-3015): maximum retries exceeded in get_vcp, causes: DDCRC_DDC_DATA(x2)]",
		e.Summary())
	assert.Equal(t, e.Summary(), e.Error())

	var nilInfo *ErrorInfo
	assert.Equal(t, "NULL", nilInfo.Summary())
}

func TestSummaryOutsideRegisteredDomains(t *testing.T) {
	e := NewWithCalleeCodes(status.Code(-5), []status.Code{status.Code(-5), status.Code(-5)}, "f", "g")

	assert.NotPanics(t, func() { _ = e.Error() })
	assert.Equal(t, "ErrorInfo[status code -5 in g, causes: Code(-5)(x2)]", e.Error())
	assert.Equal(t, "wrapped: ErrorInfo[status code -5 in f]", fmt.Errorf("wrapped: %w", New(status.Code(-5), "f")).Error())

	var buf bytes.Buffer
	assert.NotPanics(t, func() { e.Report(&buf, 0) })
	assert.Contains(t, buf.String(), "status=status code -5")
}

func TestFormattingWithRegistry(t *testing.T) {
	r, err := status.NewRegistry(status.Domain{
		ID:                 status.DomainDDC,
		Base:               status.RangeDDCBase,
		Max:                status.RangeDDCMax,
		FinderArgModulated: true,
		Find: status.TableFinder([]status.Info{
			{Code: int(status.DDCData), Name: "BUS_NOISE", Description: "noisy bus"},
		}),
	})
	require.NoError(t, err)

	e := NewRetries([]status.Code{status.DDCData, status.DDCData, status.Errno(5)}, "write_read", "get_vcp")

	assert.Equal(t, "BUS_NOISE(x2), Code(-1005)", e.CausesStringWith(r))
	assert.Equal(t,
		"ErrorInfo[DDC_-3015(-3015): unknown DDC status code -3015 in get_vcp, causes: BUS_NOISE(x2), Code(-1005)]",
		e.SummaryWith(r))

	var buf bytes.Buffer
	e.ReportWith(&buf, 0, r)
	assert.Contains(t, buf.String(), "status=BUS_NOISE(-3031): noisy bus")
	assert.Contains(t, buf.String(), "status=status code -1005")
}

func TestReport(t *testing.T) {
	inner := NewRetries([]status.Code{status.DDCNullResponse}, "write_read", "multi_part_read")
	outer := NewChained(inner, "capabilities")

	var buf bytes.Buffer
	outer.Report(&buf, 0)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "Exception in function capabilities: status=DDCRC_RETRIES(-3015): maximum retries exceeded", lines[0])
	assert.Equal(t, "Caused by:", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "   Exception in function multi_part_read"))
	assert.Equal(t, "   Caused by:", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "      Exception in function write_read: status=DDCRC_NULL_RESPONSE"))
}

func TestFree(t *testing.T) {
	e := NewWithCauses(status.DDCRetries, []*ErrorInfo{
		NewWithCause(status.DDCData, New(status.DDCData, "c"), "b"),
	}, "a")
	e.Free()
	assert.Empty(t, e.Causes)
	e.Free()

	var nilInfo *ErrorInfo
	nilInfo.Free()
}

func TestErrorsIs(t *testing.T) {
	e := NewRetries([]status.Code{status.DDCData, status.DDCNullResponse}, "f", "g")
	err := fmt.Errorf("get brightness: %w", e)

	assert.True(t, errors.Is(err, status.Err(status.DDCRetries)))
	assert.True(t, errors.Is(err, status.Err(status.DDCNullResponse)), "causes are visible to errors.Is")
	assert.False(t, errors.Is(err, status.Err(status.DDCVerify)))
	assert.Equal(t, status.DDCRetries, status.FromError(err))
}

func TestNewWithCalleeCodes(t *testing.T) {
	e := NewWithCalleeCodes(status.DDCAllTriesZero,
		[]status.Code{status.DDCReadAllZero, status.DDCReadAllZero}, "read", "write_read_with_retry")
	assert.Equal(t, "DDCRC_READ_ALL_ZERO(x2)", e.CausesString())
	assert.Equal(t, status.DDCAllTriesZero, e.StatusCode())
}
