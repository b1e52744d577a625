package ports

// OperationRecorder registra o resultado de cada operação de documento
type OperationRecorder interface {
	RecordOperation(operation, outcome string)
}

// NopRecorder descarta as medições
type NopRecorder struct{}

func (NopRecorder) RecordOperation(string, string) {}
