package cmd

import (
	"github.com/jsphweid/chordsheet/file"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/parser"
	"go.uber.org/zap"
)

func songPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func loadLines(path string) (*model.Lines, error) {
	song, err := file.ReadSong(path)
	if err != nil {
		return nil, err
	}
	lines, err := parser.Parse(song)
	if err != nil {
		logger.Debug("Could not parse song", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	logger.Debug("Parsed song", zap.String("path", path), zap.Int("lines", lines.Len()))
	return lines, nil
}
