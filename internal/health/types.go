// Package health queries the structured health-metrics endpoint for a
// resolved family member and models its response.
package health

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a display-oriented field that accepts JSON strings, numbers, and
// booleans, normalizing each to its rendered form. The zero value means
// the field was absent or null.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = Text(n.String())
		return nil
	}

	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*t = Text(strconv.FormatBool(v))
		return nil
	}

	return fmt.Errorf("unsupported value %s", string(b))
}

// Or returns the field's rendered value, or def when the field was absent.
func (t Text) Or(def string) string {
	if t == "" {
		return def
	}
	return string(t)
}

// Records is the decoded metrics payload for one member and window.
type Records struct {
	Code    *int     `json:"code"`
	Msg     string   `json:"msg"`
	Summary *Summary `json:"zonghe"`
	History History  `json:"historyRecord"`
}

// Summary carries the member's realtime health flags.
type Summary struct {
	Flag    *int `json:"flag"`
	Cardiac *int `json:"心电"`
}

// History groups the three historical record categories, each wrapping its
// fields under a nested result object.
type History struct {
	BloodPressure []BloodPressureRecord `json:"血压"`
	RestingECG    []RestingECGRecord    `json:"静态心电"`
	AmbulatoryECG []AmbulatoryECGRecord `json:"动态心电"`
}

type BloodPressureRecord struct {
	Result BloodPressureResult `json:"result"`
}

type BloodPressureResult struct {
	Date      Text `json:"date"`
	High      Text `json:"highpressure"`
	Low       Text `json:"lowpressure"`
	HeartRate Text `json:"xinlv"`
	Suspicion Text `json:"yisidu"`
	Diagnosis Text `json:"disease"`
}

type RestingECGRecord struct {
	Result RestingECGResult `json:"result"`
}

type RestingECGResult struct {
	Date                    Text `json:"date"`
	Category                *int `json:"qtyc"`
	SinusTachycardia        Text `json:"xdgs"`
	SinusBradycardia        Text `json:"xdgh"`
	AtrialPremature         Text `json:"fxzb"`
	Arrhythmia              Text `json:"xlbq"`
	VentricularPremature    Text `json:"sxzb"`
	VentricularFibrillation Text `json:"fc"`
	VentricularTachycardia  Text `json:"ssxdgs"`
	SupraventricularTachy   Text `json:"ssxxdgs"`
}

type AmbulatoryECGRecord struct {
	Result AmbulatoryECGResult `json:"result"`
}

type AmbulatoryECGResult struct {
	Date       Text `json:"date"`
	Conclusion Text `json:"conclusion"`
}

// BusinessError reports a non-success status carried inside the metrics
// payload itself, as opposed to a transport failure. Its message is
// surfaced to the end user verbatim.
type BusinessError struct {
	Code *int
	Msg  string
}

func (e *BusinessError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "未知错误"
	}
	code := "null"
	if e.Code != nil {
		code = strconv.Itoa(*e.Code)
	}
	return fmt.Sprintf("数据获取失败：%s（code=%s）", msg, code)
}
