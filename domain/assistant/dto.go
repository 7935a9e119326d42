package assistant

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content" binding:"required"`
}

type SecurityChatRequest struct {
	Model             string        `json:"model" binding:"required,max=100"`
	Messages          []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	SystemInstruction string        `json:"systemInstruction" binding:"omitempty,max=4000"`
}

type ChatReplyResponse struct {
	Reply string `json:"reply"`
}

func (req *SecurityChatRequest) lastUserMessage() string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			return req.Messages[i].Content
		}
	}
	return ""
}

// upstreamMessages is the conversation as sent upstream, with the optional
// system instruction prepended.
func (req *SecurityChatRequest) upstreamMessages() []ChatMessage {
	messages := make([]ChatMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: req.SystemInstruction})
	}
	return append(messages, req.Messages...)
}
