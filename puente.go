// Package puente delivers translated renderings of publisher articles.
//
// Puente fetches source content, normalizes its rich-text HTML into a
// constrained markdown-like form, sends it to an AI translation provider,
// parses the free-text reply back into structured title/subtitle/body
// fields, and re-renders those fields as HTML for either a server-rendered
// page or an in-place client swap.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/puente"
//	    "github.com/ZaguanLabs/puente/cache"
//	    "github.com/ZaguanLabs/puente/provider"
//	)
//
//	func main() {
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    pipe := puente.NewPipeline(p, cache.NewMemoryStore())
//
//	    fields, err := pipe.Translate(context.Background(), puente.TranslateInput{
//	        ID:    "/p/hello-world",
//	        Title: "Hello World",
//	        Body:  "A first post.",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(fields.Title)
//	}
package puente
