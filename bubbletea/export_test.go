package bubbletea

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Blocks returns the model's token rows.
func Blocks(m Model) []*TokenBlock {
	return m.blocks
}
