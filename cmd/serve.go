package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/lexer"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/parser"
	"github.com/jsphweid/chordsheet/render"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord sheet API",
	Long:  `Serves POST /parse, /render, /transpose and /tokens over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func NewRouter(allowedOrigins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/tokens", HandleTokens).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("Request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger.Debug("Request failed", zap.Int("status", status), zap.Error(err))
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, into any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxSongSize)
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func parseBody(w http.ResponseWriter, r *http.Request) (*model.Lines, bool) {
	var input model.SongRequestBody
	if !decode(w, r, &input) {
		return nil, false
	}
	lines, err := parser.Parse(input.Song)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return lines, true
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	lines, ok := parseBody(w, r)
	if !ok {
		return
	}
	res := model.ParseResponse{Lines: make([][]model.Phrase, 0, lines.Len())}
	lines.Each(func(_ int, phrases []model.Phrase) {
		res.Lines = append(res.Lines, phrases)
	})
	writeJSON(w, http.StatusOK, res)
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	lines, ok := parseBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, model.TextResponse{Text: render.Render(lines)})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if !decode(w, r, &input) {
		return
	}
	lines, err := parser.Parse(input.Song)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	transposed, err := chord.TransposeLines(lines, input.HalfSteps)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TextResponse{Text: render.Source(transposed)})
}

func HandleTokens(w http.ResponseWriter, r *http.Request) {
	var input model.SongRequestBody
	if !decode(w, r, &input) {
		return
	}
	tokens, err := lexer.Tokenize(input.Song)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res := model.TokensResponse{Tokens: make([]model.TokenResult, 0, len(tokens))}
	for _, tok := range tokens {
		res.Tokens = append(res.Tokens, model.TokenResult{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func serve() error {
	logger.Info("Serving", zap.String("addr", cfg.Server.Addr), zap.Strings("allowed_origins", cfg.Server.AllowedOrigins))
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           NewRouter(cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
