// Package logging builds the slog logger used by the aoc tool from
// config.LogConfig: a text or JSON handler on stderr at the configured
// level, teed into a size-rotated file (lumberjack) when log.file is set.
package logging
