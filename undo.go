package main

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	m.apply(action.Type, action.Inverse)
	m.redoStack = append(m.redoStack, action)
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	m.apply(action.Type, action.Data)
	m.undoStack = append(m.undoStack, action)
}

// apply writes one side of an action to the store.
func (m *model) apply(t ActionType, data interface{}) {
	store := m.app.store
	switch t {
	case ActionSetDrive:
		d := data.(SetDriveData)
		store.UpdateDriver(d.Driver, float64(d.Value))
		m.selected = d.Driver
	case ActionSetComment:
		d := data.(SetCommentData)
		store.SetComment(d.Driver, d.Text)
		m.selected = d.Driver
	case ActionSetProjectName:
		store.SetProjectName(data.(SetProjectNameData).Name)
	case ActionReset:
		store.Replace(data.(ResetData).State)
	}
}

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	action := Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	}
	m.undoStack = append(m.undoStack, action)
	m.redoStack = m.redoStack[:0]
}
