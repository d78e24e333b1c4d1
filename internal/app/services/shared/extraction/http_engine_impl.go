package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/utils"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type httpEngine struct {
	Client   *http.Client
	Endpoint string
	Limiter  *rate.Limiter
	Log      *zap.Logger
}

// NewHTTPEngine posts document bytes to an OCR service. The service answers with
// {"status": "extracted"|"not_applicable"|"failed", "reason": "...", "fields": {...}}.
// requestsPerSecond throttles calls client side; zero or less disables throttling.
func NewHTTPEngine(endpoint string, timeout time.Duration, requestsPerSecond float64, log *zap.Logger) contracts.ExtractionEngine {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &httpEngine{
		Client:   &http.Client{Timeout: timeout},
		Endpoint: endpoint,
		Limiter:  rate.NewLimiter(limit, 1),
		Log:      log,
	}
}

func (e *httpEngine) Extract(ctx context.Context, content []byte, fileType, declaredType string) models.ExtractionResult {
	requestID := utils.GetRequestID(ctx)
	e.Log.Info("httpEngine.Extract called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("declared_type", declaredType),
	)

	if err := e.Limiter.Wait(ctx); err != nil {
		return models.ExtractionFailure(fmt.Sprintf("throttled: %v", err))
	}

	target, err := url.Parse(e.Endpoint)
	if err != nil {
		return models.ExtractionFailure(fmt.Sprintf("invalid extraction endpoint: %v", err))
	}
	query := target.Query()
	query.Set("type", declaredType)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(content))
	if err != nil {
		return models.ExtractionFailure(err.Error())
	}
	req.Header.Set(constvars.HeaderContentType, fileType)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	resp, err := e.Client.Do(req)
	if err != nil {
		e.Log.Error("httpEngine.Extract request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.ExtractionFailure(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ExtractionFailure(err.Error())
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return models.ExtractionFailure(fmt.Sprintf("extraction service answered %d", resp.StatusCode))
	}
	if !gjson.ValidBytes(body) {
		return models.ExtractionFailure("extraction service returned invalid JSON")
	}

	result := parseExtractionResponse(body)
	e.Log.Info("httpEngine.Extract succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, string(result.Outcome)),
	)
	return result
}

func parseExtractionResponse(body []byte) models.ExtractionResult {
	parsed := gjson.ParseBytes(body)
	switch models.ExtractionOutcome(parsed.Get("status").String()) {
	case models.ExtractionExtracted:
	case models.ExtractionNotApplicable:
		return models.NotApplicable()
	case models.ExtractionFailed:
		return models.ExtractionFailure(parsed.Get("reason").String())
	default:
		return models.ExtractionFailure(fmt.Sprintf("unknown extraction status %q", parsed.Get("status").String()))
	}

	fieldsJSON := parsed.Get("fields")
	fields := models.ExtractedFields{
		Date:     fieldsJSON.Get("date").String(),
		Notes:    fieldsJSON.Get("notes").String(),
		TestType: fieldsJSON.Get("testType").String(),
		LabName:  fieldsJSON.Get("labName").String(),
	}
	fieldsJSON.Get("medications").ForEach(func(_, medication gjson.Result) bool {
		fields.Medications = append(fields.Medications, models.Medication{
			Name:      medication.Get("name").String(),
			Dosage:    medication.Get("dosage").String(),
			Frequency: medication.Get("frequency").String(),
			Duration:  medication.Get("duration").String(),
		})
		return true
	})
	fieldsJSON.Get("results").ForEach(func(_, result gjson.Result) bool {
		fields.Results = append(fields.Results, models.LabResult{
			Test:        result.Get("test").String(),
			Value:       result.Get("value").String(),
			Unit:        result.Get("unit").String(),
			NormalRange: result.Get("normalRange").String(),
			Status:      result.Get("status").String(),
		})
		return true
	})
	return models.Extracted(fields)
}
