package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
	"github.com/minhqn/price-intel/utils/errors"
	"github.com/minhqn/price-intel/utils/keypool"
	"github.com/minhqn/price-intel/utils/logger"
	"go.uber.org/zap"
)

// OracleRepository is the narrow seam in front of the semantic reasoning
// service. The service is an untrusted black box: it may echo stale ids,
// omit the summary, or return garbage, and the pipeline has to cope.
type OracleRepository interface {
	Classify(ctx context.Context, query string, candidates []model.OracleCandidate) (*model.OracleVerdict, error)
}

type chatOracle struct {
	baseURL    string
	model      string
	mode       constant.AnalysisMode
	keys       *keypool.Pool
	httpClient *http.Client
}

// NewOracleRepository builds an adapter over an OpenAI-compatible chat
// completions endpoint (Groq in production). The key pool decides which
// credential each call uses.
func NewOracleRepository(baseURL, modelName string, mode constant.AnalysisMode, keys *keypool.Pool, timeout time.Duration) OracleRepository {
	return &chatOracle{
		baseURL: baseURL,
		model:   modelName,
		mode:    mode,
		keys:    keys,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	Temperature    float64             `json:"temperature"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Wire shapes of the two verdicts the model is instructed to produce.
type flatVerdictPayload struct {
	ValidProductIDs []struct {
		ProductID   int    `json:"product_id"`
		ProductName string `json:"product_name"`
	} `json:"valid_product_ids"`
	SearchSummary string `json:"searchSummary"`
}

type groupedVerdictPayload struct {
	ProductGroups []struct {
		GroupName   string `json:"group_name"`
		Description string `json:"description"`
		ProductIDs  []int  `json:"product_ids"`
	} `json:"product_groups"`
	SearchSummary string `json:"searchSummary"`
}

// Classify submits the simplified candidates and returns the parsed verdict.
// Failure taxonomy: no usable key -> ErrNoAPIKeyConfigured (before any
// network I/O), transport or non-2xx -> ErrOracleUnavailable, empty or
// unparsable payload -> ErrOracleResponseInvalid. All are fatal for the
// request; nothing is retried here.
func (o *chatOracle) Classify(ctx context.Context, query string, candidates []model.OracleCandidate) (*model.OracleVerdict, error) {
	apiKey, ok := o.keys.Pick()
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNoAPIKeyConfigured)
	}

	user, err := buildUserPrompt(query, candidates)
	if err != nil {
		return nil, errors.WrapCustomError(constant.ErrInternal, err)
	}

	system := buildFlatSystemPrompt(query)
	if o.mode == constant.ModeGrouped {
		system = buildGroupedSystemPrompt(query)
	}

	reqBody := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		// Lowest randomness: verdicts should be as repeatable as the
		// model allows.
		Temperature:    0,
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WrapCustomError(constant.ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WrapCustomError(constant.ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapCustomError(constant.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapCustomError(constant.ErrOracleUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.WrapCustomError(constant.ErrOracleUnavailable,
			fmt.Errorf("oracle returned status %d: %s", resp.StatusCode, string(respBody)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.WrapCustomError(constant.ErrOracleResponseInvalid, err)
	}
	if decoded.Error != nil {
		return nil, errors.WrapCustomError(constant.ErrOracleUnavailable,
			fmt.Errorf("oracle error: %s", decoded.Error.Message))
	}
	if len(decoded.Choices) == 0 || strings.TrimSpace(decoded.Choices[0].Message.Content) == "" {
		return nil, errors.SetCustomError(constant.ErrOracleResponseInvalid)
	}

	content := decoded.Choices[0].Message.Content
	if o.mode == constant.ModeGrouped {
		return parseGroupedVerdict(content)
	}
	return parseFlatVerdict(content)
}

func parseFlatVerdict(content string) (*model.OracleVerdict, error) {
	var payload flatVerdictPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, errors.WrapCustomError(constant.ErrOracleResponseInvalid, err)
	}

	verdict := &model.OracleVerdict{
		ValidIDs: make([]int, 0, len(payload.ValidProductIDs)),
		Summary:  payload.SearchSummary,
	}
	for _, item := range payload.ValidProductIDs {
		// The echoed name is audit-only; ids are the only join key.
		logger.Debug("[Classify] oracle accepted listing",
			zap.Int("id", item.ProductID),
			zap.String("echoed_name", item.ProductName),
		)
		verdict.ValidIDs = append(verdict.ValidIDs, item.ProductID)
	}
	return verdict, nil
}

func parseGroupedVerdict(content string) (*model.OracleVerdict, error) {
	var payload groupedVerdictPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, errors.WrapCustomError(constant.ErrOracleResponseInvalid, err)
	}

	verdict := &model.OracleVerdict{
		Groups:  make([]model.OracleGroup, 0, len(payload.ProductGroups)),
		Summary: payload.SearchSummary,
	}
	for _, g := range payload.ProductGroups {
		verdict.Groups = append(verdict.Groups, model.OracleGroup{
			Name:        g.GroupName,
			Description: g.Description,
			MemberIDs:   g.ProductIDs,
		})
	}
	return verdict, nil
}
