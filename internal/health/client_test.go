package health

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xingou/family-health-mcp/internal/common"
)

func newMetricsServer(t *testing.T, status int, body string) (*Client, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/health/records/{uid}?days={days}", 0), &gotPath
}

func TestFetchRecordsSuccess(t *testing.T) {
	c, gotPath := newMetricsServer(t, http.StatusOK, `{
		"code": 0,
		"msg": "success",
		"zonghe": {"flag": 1, "心电": 0},
		"historyRecord": {
			"血压": [{"result": {"date": "2026-08-25", "highpressure": 135, "lowpressure": 85, "xinlv": 72}}],
			"静态心电": [{"result": {"date": "2026-08-24", "qtyc": 2, "xdgs": 0.3}}],
			"动态心电": []
		}
	}`)

	rec, err := c.FetchRecords(context.Background(), "23", 3)
	require.NoError(t, err)
	assert.Equal(t, "/health/records/23?days=3", *gotPath)

	require.NotNil(t, rec.Summary)
	require.NotNil(t, rec.Summary.Flag)
	assert.Equal(t, 1, *rec.Summary.Flag)

	require.Len(t, rec.History.BloodPressure, 1)
	bp := rec.History.BloodPressure[0].Result
	assert.Equal(t, "135", bp.High.Or("0"))
	assert.Equal(t, "72", bp.HeartRate.Or("未记录"))
	assert.Equal(t, "无", bp.Suspicion.Or("无"))

	require.Len(t, rec.History.RestingECG, 1)
	ecg := rec.History.RestingECG[0].Result
	require.NotNil(t, ecg.Category)
	assert.Equal(t, 2, *ecg.Category)
	assert.Equal(t, "0.3", ecg.SinusTachycardia.Or("0"))

	assert.Empty(t, rec.History.AmbulatoryECG)
}

func TestFetchRecordsBusinessFailure(t *testing.T) {
	c, _ := newMetricsServer(t, http.StatusOK, `{"code": 1, "msg": "维护中"}`)

	_, err := c.FetchRecords(context.Background(), "23", 3)
	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "数据获取失败：维护中（code=1）", bizErr.Error())
}

func TestFetchRecordsWrongMsgIsBusinessFailure(t *testing.T) {
	c, _ := newMetricsServer(t, http.StatusOK, `{"code": 0, "msg": "partial"}`)

	_, err := c.FetchRecords(context.Background(), "23", 3)
	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "数据获取失败：partial（code=0）", bizErr.Error())
}

func TestFetchRecordsMissingCode(t *testing.T) {
	c, _ := newMetricsServer(t, http.StatusOK, `{"msg": "success"}`)

	_, err := c.FetchRecords(context.Background(), "23", 3)
	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "数据获取失败：success（code=null）", bizErr.Error())
}

func TestFetchRecordsNonSuccessStatus(t *testing.T) {
	c, _ := newMetricsServer(t, http.StatusInternalServerError, `boom`)

	_, err := c.FetchRecords(context.Background(), "23", 3)
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestFetchRecordsMalformedBody(t *testing.T) {
	c, _ := newMetricsServer(t, http.StatusOK, `{"code": 0,`)

	_, err := c.FetchRecords(context.Background(), "23", 3)
	require.ErrorIs(t, err, common.ErrMalformedResponse)
}
