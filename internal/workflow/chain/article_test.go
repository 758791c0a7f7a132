package chain

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	llmctx "news-article-ai-api/internal/domain/service"
	wfmodel "news-article-ai-api/internal/workflow/model"
	workflowport "news-article-ai-api/internal/workflow/port"
	"news-article-ai-api/pkg/errors"
)

type fakeChatModel struct {
	reply *schema.Message
	err   error

	calls   int
	msgs    []*schema.Message
	common  *model.Options
	samples *workflowport.SamplingOptions
}

func (f *fakeChatModel) Generate(_ context.Context, msgs []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.calls++
	f.msgs = msgs
	f.common = model.GetCommonOptions(&model.Options{}, opts...)
	f.samples = workflowport.GetSamplingOptions(opts...)
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, stderrors.New("not implemented")
}

type fakeFactory struct {
	model model.BaseChatModel
	err   error
	names []string
}

func (f *fakeFactory) Get(_ context.Context, name string) (model.BaseChatModel, error) {
	f.names = append(f.names, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

type recordingUsage struct {
	usages []llmctx.LLMUsage
}

func (r *recordingUsage) Record(_ context.Context, u llmctx.LLMUsage) {
	r.usages = append(r.usages, u)
}

func testInput() *wfmodel.ArticleGenerateInput {
	return &wfmodel.ArticleGenerateInput{
		Prompt:   "Headline: City approves new park",
		Provider: "gemini",
		Model:    "gemini-pro",
		Sampling: wfmodel.Sampling{Temperature: 0.7, TopP: 0.8, TopK: 40, MaxTokens: 1200},
	}
}

func TestArticleChainInvokePassesSampling(t *testing.T) {
	reply := schema.AssistantMessage("City Council today approved...", nil)
	reply.ResponseMeta = &schema.ResponseMeta{
		FinishReason: "STOP",
		Usage:        &schema.TokenUsage{PromptTokens: 12, CompletionTokens: 34, TotalTokens: 46},
	}
	fm := &fakeChatModel{reply: reply}
	ff := &fakeFactory{model: fm}

	rec := &recordingUsage{}
	out, err := NewArticleChain(ff, rec).Invoke(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.usages) != 1 || rec.usages[0].PromptTokens != 12 || rec.usages[0].Err != nil {
		t.Fatalf("unexpected usage records: %+v", rec.usages)
	}
	if rec.usages[0].Workflow != "article_generate" || rec.usages[0].Provider != "gemini" {
		t.Errorf("unexpected usage attribution: %+v", rec.usages[0].LLMCall)
	}
	if out.Content != "City Council today approved..." {
		t.Errorf("content = %q", out.Content)
	}
	if out.Meta.PromptTokens != 12 || out.Meta.CompletionTokens != 34 || out.Meta.FinishReason != "STOP" {
		t.Errorf("unexpected meta: %+v", out.Meta)
	}
	if out.Meta.Provider != "gemini" || out.Meta.Model != "gemini-pro" {
		t.Errorf("unexpected provider/model: %+v", out.Meta)
	}

	if fm.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", fm.calls)
	}
	if len(ff.names) != 1 || ff.names[0] != "gemini" {
		t.Errorf("factory lookups = %v", ff.names)
	}
	if len(fm.msgs) != 1 || fm.msgs[0].Role != schema.User || fm.msgs[0].Content != "Headline: City approves new park" {
		t.Errorf("unexpected messages: %+v", fm.msgs)
	}
	c := fm.common
	if c.Temperature == nil || *c.Temperature != 0.7 {
		t.Errorf("temperature not passed: %v", c.Temperature)
	}
	if c.TopP == nil || *c.TopP != 0.8 {
		t.Errorf("top_p not passed: %v", c.TopP)
	}
	if c.MaxTokens == nil || *c.MaxTokens != 1200 {
		t.Errorf("max_tokens not passed: %v", c.MaxTokens)
	}
	if c.Model == nil || *c.Model != "gemini-pro" {
		t.Errorf("model not passed: %v", c.Model)
	}
	if fm.samples.TopK == nil || *fm.samples.TopK != 40 {
		t.Errorf("top_k not passed: %v", fm.samples.TopK)
	}
}

func TestArticleChainProviderFailures(t *testing.T) {
	cases := map[string]*fakeFactory{
		"remote error":  {model: &fakeChatModel{err: stderrors.New("quota exceeded")}},
		"nil message":   {model: &fakeChatModel{}},
		"blank content": {model: &fakeChatModel{reply: schema.AssistantMessage("  \n ", nil)}},
		"factory error": {err: stderrors.New("unknown provider")},
	}
	for name, ff := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewArticleChain(ff, nil).Invoke(context.Background(), testInput())
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, errors.ErrProvider) {
				t.Fatalf("expected provider error, got %v", err)
			}
		})
	}
}

func TestArticleChainProviderErrorKeepsCause(t *testing.T) {
	cause := stderrors.New("quota exceeded")
	ff := &fakeFactory{model: &fakeChatModel{err: cause}}
	rec := &recordingUsage{}

	_, err := NewArticleChain(ff, rec).Invoke(context.Background(), testInput())
	if len(rec.usages) != 1 || rec.usages[0].Err == nil {
		t.Errorf("failed call should be recorded with its error: %+v", rec.usages)
	}
	if !stderrors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
	if got := errors.AsAppError(err).Cause(); got != "quota exceeded" {
		t.Errorf("Cause() = %q", got)
	}
}

func TestArticleChainRejectsBadInput(t *testing.T) {
	fm := &fakeChatModel{reply: schema.AssistantMessage("x", nil)}
	c := NewArticleChain(&fakeFactory{model: fm}, nil)

	in := testInput()
	in.Prompt = " "
	if _, err := c.Invoke(context.Background(), in); !stderrors.Is(err, errors.ErrGenerationFailed) {
		t.Errorf("empty prompt: expected generation failure, got %v", err)
	}
	in = testInput()
	in.Sampling.MaxTokens = 0
	if _, err := c.Invoke(context.Background(), in); !stderrors.Is(err, errors.ErrGenerationFailed) {
		t.Errorf("zero max tokens: expected generation failure, got %v", err)
	}
	if fm.calls != 0 {
		t.Errorf("provider must not be called on bad input, got %d calls", fm.calls)
	}
}
