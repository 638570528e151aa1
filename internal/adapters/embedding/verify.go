package embedding

import (
	"context"
	"fmt"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
)

// VerifyDimension embeds a probe string and checks the result against the
// provider's declared dimension. Run once at process bootstrap: an
// unreachable provider or a wrong-dimension model is a configuration error
// that must surface before serving traffic, not during a request.
func VerifyDimension(ctx context.Context, provider core.EmbeddingProvider) error {
	vec, err := provider.Embed(ctx, "dimension probe")
	if err != nil {
		return fmt.Errorf("embedding provider unreachable: %w", err)
	}
	if len(vec) != provider.Dimension() {
		return fmt.Errorf("embedding dimension mismatch: provider returned %d, configured %d", len(vec), provider.Dimension())
	}
	return nil
}
