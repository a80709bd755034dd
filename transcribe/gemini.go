package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-1.5-pro"

// geminiAPI implements fileAPI against the Gemini Files API.
type geminiAPI struct {
	client *genai.Client
	model  string
}

func newGeminiAPI(ctx context.Context, apiKey, model string) (*geminiAPI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = defaultModel
	}
	return &geminiAPI{client: client, model: model}, nil
}

func (g *geminiAPI) Upload(ctx context.Context, path string) (*RemoteFile, error) {
	f, err := g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: mimeForExt(filepath.Ext(path)),
	})
	if err != nil {
		return nil, err
	}
	return fromGenaiFile(f), nil
}

func (g *geminiAPI) Get(ctx context.Context, name string) (*RemoteFile, error) {
	f, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	return fromGenaiFile(f), nil
}

func (g *geminiAPI) Generate(ctx context.Context, prompt string, f *RemoteFile) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(f.URI, f.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return text, nil
}

func (g *geminiAPI) Delete(ctx context.Context, name string) error {
	_, err := g.client.Files.Delete(ctx, name, nil)
	return err
}

func fromGenaiFile(f *genai.File) *RemoteFile {
	return &RemoteFile{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    string(f.State),
	}
}

// mimeForExt maps the allowed upload extensions to their MIME types; the
// Files API rejects uploads without one.
func mimeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".aac":
		return "audio/aac"
	case ".wma":
		return "audio/x-ms-wma"
	default:
		return "application/octet-stream"
	}
}
