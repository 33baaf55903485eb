// Package config loads the aoc tooling configuration file (aoc.yaml).
//
// Top-level types:
//   - Config: year, users, default_user, inputs_dir and one section per tool
//   - SessionConfig: where the puzzle-site session cookie comes from
//     (cookie_env, cookie_file); the cookie itself never lives in YAML
//   - FetchConfig: base_url, timeout, retries, user_agent
//   - RunConfig: warmup/num rounds, build parallelism, metrics textfile
//   - HistoryConfig, SetupConfig, LogConfig
//
// Load(path) reads the YAML file, applies defaults (year 2021, users ahr/ukr,
// inputs/, AOC_SESSION + auth.txt, 30s fetch timeout, one warmup and one
// timed round) and validates. LoadOptional(path) returns the defaults when
// the file does not exist, since every tool works without a config file.
package config
