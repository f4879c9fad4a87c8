package session

import (
	"encoding/json"
	"fmt"
)

// decodeEnvelope reads the type tag off a raw inbound line.
func decodeEnvelope(line []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return "", fmt.Errorf("malformed message: %w", err)
	}
	if env.Type == "" {
		return "", fmt.Errorf("missing type field")
	}
	return env.Type, nil
}

func encodeError(code, message string) []byte {
	line, err := marshalEnvelope("error", ErrorReply{Code: code, Message: message})
	if err != nil {
		// marshalEnvelope only fails on non-serializable payloads; ErrorReply
		// always serializes, so this path is unreachable in practice.
		return []byte(`{"type":"error","code":"INVALID_MESSAGE","message":"internal encode failure"}`)
	}
	return line
}

func encodeHello(version, server string) []byte {
	line, _ := marshalEnvelope("hello", HelloReply{Version: version, Server: server})
	return line
}

func encodeObs(data, info any, reward float64, done bool) []byte {
	line, _ := marshalEnvelope("obs", ObsReply{Data: data, Reward: reward, Done: done, Info: info})
	return line
}

func encodeCompareObs(game1, game2 any, leader string, stats1, stats2 ComparisonStats) []byte {
	line, _ := marshalEnvelope("compare_obs", CompareObsReply{
		Game1: game1,
		Game2: game2,
		Comparison: Comparison{
			Leader: leader,
			Stats1: stats1,
			Stats2: stats2,
		},
	})
	return line
}

func encodeCompareComplete(winner string, game1, game2 any) []byte {
	line, _ := marshalEnvelope("compare_complete", CompareCompleteReply{Winner: winner, Game1: game1, Game2: game2})
	return line
}
