// Package commentary provides a client for the dealer-commentary relay.
//
// The relay turns round settlements into short spoken dealer lines. Each
// player session on the relay is addressed by a session UUID; the client
// posts a prompt describing the settled round and receives the generated
// commentary back.
//
// # Basic Usage
//
//	client := commentary.NewClient(&commentary.ClientConfig{
//	    BaseURL: "https://relay.example.net",
//	})
//
//	msg, err := client.Generate(ctx, sessionID, &commentary.Request{
//	    Prompt:    result.Summary(),
//	    GameState: "settled",
//	})
//
// # Response Formats
//
// The relay has two wire formats in the field. The current format nests
// session details under a metadata object:
//
//	{"message": "...", "metadata": {"session_id": "...", "game_state": "..."}}
//
// Older deployments return a flat object:
//
//	{"response": "...", "session_id": "...", "game_state": "..."}
//
// The client accepts both and normalizes them into a single Message value.
//
// Commentary is decorative. Notify is the fire-and-forget variant used on
// the settlement path; it logs nothing and never fails the round.
package commentary
