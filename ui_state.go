package main

type uiState struct {
	noticeMsg    string
	noticeType   noticeKind
	noticeSeq    int
	visibleStart int
}
