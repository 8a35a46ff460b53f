package provider

import "context"

// FakeClient implements Client for tests.
type FakeClient struct {
	GenerateContentFn func(ctx context.Context, prompt, systemInstruction string) (string, error)
}

func (f *FakeClient) GenerateContent(ctx context.Context, prompt, systemInstruction string) (string, error) {
	if f.GenerateContentFn != nil {
		return f.GenerateContentFn(ctx, prompt, systemInstruction)
	}
	panic("unexpected GenerateContent")
}
