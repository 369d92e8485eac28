package governance

import (
	"context"
	"testing"
)

func TestDefaultPolicyEngine_Evaluate(t *testing.T) {
	engine := NewDefaultPolicyEngine()
	ctx := context.Background()

	// Test Allow (Default)
	res1, err := engine.Evaluate(ctx, Request{Tool: "Google", Input: "capital of France"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res1.Effect != EffectAllow {
		t.Errorf("Expected EffectAllow, got %s", res1.Effect)
	}

	// Test Deny by tool
	engine.DenyTool("LLM")
	res2, err := engine.Evaluate(ctx, Request{Tool: "LLM", Input: "anything"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res2.Effect != EffectDeny {
		t.Errorf("Expected EffectDeny, got %s", res2.Effect)
	}
}

func TestNewPolicyEngine(t *testing.T) {
	engine, err := NewPolicyEngine(nil, []string{`(?i)social security number`})
	if err != nil {
		t.Fatalf("NewPolicyEngine failed: %v", err)
	}

	res, err := engine.Evaluate(context.Background(), Request{Tool: "Google", Input: "find Social Security Number of John"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Effect != EffectDeny {
		t.Errorf("Expected EffectDeny, got %s", res.Effect)
	}

	res, err = engine.Evaluate(context.Background(), Request{Tool: "Google", Input: "population of Paris"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Effect != EffectAllow {
		t.Errorf("Expected EffectAllow, got %s", res.Effect)
	}
}

func TestNewPolicyEngine_InvalidPattern(t *testing.T) {
	if _, err := NewPolicyEngine(nil, []string{"("}); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}
