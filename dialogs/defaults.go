package dialogs

// RegisterDefaults registers the dialogs this package ships with under
// their *Dialog names.
func RegisterDefaults(s *Service) {
	s.Register(ConfirmDialog, NewConfirm)
	s.Register(PromptDialog, NewPrompt)
	s.Register(CommentDialog, NewCommentEditor)
	s.Register(HelpDialog, NewHelp)
}
