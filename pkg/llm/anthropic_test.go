package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/pkg/config"
)

type fakeMessages struct {
	lastParams sdk.MessageNewParams
	reply      string
	err        error
}

func (f *fakeMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	f.lastParams = body
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.Message{
		Content: []sdk.ContentBlockUnion{{Type: "text", Text: f.reply}},
	}, nil
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Model:     "claude-sonnet-4-5",
		MaxTokens: 1024,
		Timeout:   5 * time.Second,
	}
}

func TestAnthropicClientText(t *testing.T) {
	t.Run("returns trimmed text and applies defaults", func(t *testing.T) {
		fake := &fakeMessages{reply: "  hello there\n"}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		text, err := client.Text(context.Background(), Request{Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "hello there", text)
		assert.Equal(t, sdk.Model("claude-sonnet-4-5"), fake.lastParams.Model)
		assert.Equal(t, int64(1024), fake.lastParams.MaxTokens)
	})

	t.Run("request model overrides default", func(t *testing.T) {
		fake := &fakeMessages{reply: "ok"}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		_, err := client.Text(context.Background(), Request{Prompt: "hi", Model: "claude-haiku-4-5"})
		require.NoError(t, err)
		assert.Equal(t, sdk.Model("claude-haiku-4-5"), fake.lastParams.Model)
	})

	t.Run("transport failures are classified", func(t *testing.T) {
		fake := &fakeMessages{err: errors.New("connection refused")}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		_, err := client.Text(context.Background(), Request{Prompt: "hi"})
		require.Error(t, err)
		assert.Equal(t, KindTransport, KindOf(err))
	})

	t.Run("deadline failures are timeouts", func(t *testing.T) {
		fake := &fakeMessages{err: context.DeadlineExceeded}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		_, err := client.Text(context.Background(), Request{Prompt: "hi"})
		require.Error(t, err)
		assert.Equal(t, KindTimeout, KindOf(err))
	})

	t.Run("empty reply is a validation error", func(t *testing.T) {
		fake := &fakeMessages{reply: "   "}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		_, err := client.Text(context.Background(), Request{Prompt: "hi"})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})
}

func TestAnthropicClientStructured(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"action": {"type": "string"},
			"confidence": {"type": "number"}
		},
		"required": ["action", "confidence"]
	}`)

	type decision struct {
		Action     string  `json:"action"`
		Confidence float64 `json:"confidence"`
	}

	t.Run("valid output decodes", func(t *testing.T) {
		fake := &fakeMessages{reply: `{"action": "wait", "confidence": 0.8}`}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		var d decision
		require.NoError(t, client.Structured(context.Background(), Request{Prompt: "decide"}, schema, &d))
		assert.Equal(t, "wait", d.Action)
		assert.Equal(t, 0.8, d.Confidence)
	})

	t.Run("tolerates code fences and prose", func(t *testing.T) {
		fake := &fakeMessages{reply: "Here you go:\n```json\n{\"action\": \"engage\", \"confidence\": 0.9}\n```"}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		var d decision
		require.NoError(t, client.Structured(context.Background(), Request{Prompt: "decide"}, schema, &d))
		assert.Equal(t, "engage", d.Action)
	})

	t.Run("schema violation is a validation error", func(t *testing.T) {
		fake := &fakeMessages{reply: `{"action": "wait"}`}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		var d decision
		err := client.Structured(context.Background(), Request{Prompt: "decide"}, schema, &d)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("no JSON at all is a validation error", func(t *testing.T) {
		fake := &fakeMessages{reply: "I cannot answer that."}
		client := &AnthropicClient{msg: fake, cfg: testLLMConfig()}

		var d decision
		err := client.Structured(context.Background(), Request{Prompt: "decide"}, schema, &d)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})
}

func TestStubClient(t *testing.T) {
	t.Run("pops responses in order", func(t *testing.T) {
		stub := NewStubClient("one", "two")

		first, err := stub.Text(context.Background(), Request{Prompt: "a"})
		require.NoError(t, err)
		second, err := stub.Text(context.Background(), Request{Prompt: "b"})
		require.NoError(t, err)

		assert.Equal(t, "one", first)
		assert.Equal(t, "two", second)
		require.Len(t, stub.Requests(), 2)
		assert.Equal(t, "a", stub.Requests()[0].Prompt)
	})

	t.Run("empty queue is a transport error", func(t *testing.T) {
		stub := NewStubClient()
		_, err := stub.Text(context.Background(), Request{Prompt: "a"})
		require.Error(t, err)
		assert.Equal(t, KindTransport, KindOf(err))
	})
}
