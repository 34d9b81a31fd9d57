package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDocument(t *testing.T) {
	before := testutil.ToFloat64(DocumentsTotal.WithLabelValues("fallback"))
	RecordDocument("fallback")
	assert.Equal(t, before+1, testutil.ToFloat64(DocumentsTotal.WithLabelValues("fallback")))
}

func TestRecordProbeLabels(t *testing.T) {
	ok := testutil.ToFloat64(ProbesTotal.WithLabelValues("reachable"))
	bad := testutil.ToFloat64(ProbesTotal.WithLabelValues("unreachable"))
	RecordProbe(true)
	RecordProbe(false)
	RecordProbe(false)
	assert.Equal(t, ok+1, testutil.ToFloat64(ProbesTotal.WithLabelValues("reachable")))
	assert.Equal(t, bad+2, testutil.ToFloat64(ProbesTotal.WithLabelValues("unreachable")))
}

func TestRecordRequestUnmatched(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("unmatched", "404"))
	RecordRequest("", "404")
	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("unmatched", "404")))
}
