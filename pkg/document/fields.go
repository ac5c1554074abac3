package document

// Fields returns the document body as a generic tree: recognized fields that are present
// plus everything in Extra. An Extra entry wins over the recognized field of the same name,
// which is how a partially read list keeps its original items. Kind is not included. The
// result shares leaf values with the document, so callers must treat it as read-only.
func (d *Document) Fields() map[string]any {
	if d == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(d.Extra)+4)
	if d.Questoes != nil {
		issues := make([]any, 0, len(d.Questoes))
		for _, q := range d.Questoes {
			issues = append(issues, q.Fields())
		}
		out[fieldQuestoes] = issues
	}
	if d.Dispositivo != nil {
		out[fieldDispositivo] = d.Dispositivo.Fields()
	}
	if d.Corpo != nil {
		out[fieldCorpo] = d.Corpo
	}
	if d.Pedidos != nil {
		out[fieldPedidos] = d.Pedidos
	}
	for k, v := range d.Extra {
		out[k] = v
	}
	return out
}

// Fields returns the issue as a generic tree.
func (i Issue) Fields() map[string]any {
	out := make(map[string]any, len(i.Extra)+3)
	if i.Tema != nil {
		out[fieldTema] = *i.Tema
	}
	if i.Tipo != nil {
		out[fieldTipo] = *i.Tipo
	}
	if i.Paragrafos != nil {
		out[fieldParagrafos] = i.Paragrafos
	}
	for k, v := range i.Extra {
		out[k] = v
	}
	return out
}

// Fields returns the disposition as a generic tree.
func (d *Disposition) Fields() map[string]any {
	out := make(map[string]any, len(d.Extra)+1)
	if d.Paragrafos != nil {
		out[fieldParagrafos] = d.Paragrafos
	}
	for k, v := range d.Extra {
		out[k] = v
	}
	return out
}
