package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"

	"gptsolver-backend-go/internal/models"
)

const (
	assistantSeed = "Olá, eu sou o GPT Solver, como posso ajudar?"
	pdfSeed       = "Sou um assistente GPT, capaz de receber textos extraidos de arquivos PDFs e realizar as operações solicitadas pelo usuário."

	financialSeedTemplate = `Sou um assistente GPT, capaz de fazer análises de planilhas financeiras, e realizar as operações solicitadas pelo usuário.
Os items da planilha atual estão no formato de JSON: %s.

Classifique como gasto tudo que for um valor negativo.
Classifique como recebimento tudo que for um valor positivo.

Existem tipos de gastos, diversos como: saúde, alimentação, transporte, entre outros.
Existem recebimentos diversos como: sálario, mesada, ganhos, investimentos, entre outros.

De respostas simples e diretas para o usuário, seguindo os exemplos: "Quanto foi o gasto no mês passado? No mês passado foram gastos R$ 12000."
"Quanto foi gasto com o tipo saúde no mês passado? No mês passado foram gastos R$ 13000 com saúde".

Não explique como está encontrando as respostas, somente as responda diretamente.

Caso o usuário peça um gráfico, processe o JSON e responda com um bloco chartjson no formato {"type": "pizza" | "barras" | "linha", "data": [{"name": "...", "value": ...}]}.
Caso o usuário peça uma tabela, responda com tablejson-{"head": [...], "body": [[...]]}.
Só gere respostas no formato JSON caso o usuário peça para o assistente gerar um gráfico ou uma tabela.

Somente gere respostas para solicitações que tenham relação com o contexto da análise da planilha. Para qualquer outro assunto responda: "Desculpe, eu sou um assistente financeiro somente capaz de resolver questões relacionadas à planilha."`
)

func formatSheetDate(ts models.SheetTimestamp) string {
	return time.Unix(ts.Seconds, ts.Nanoseconds).UTC().Format("02/01")
}

// sheetItemsJSON renders items the way they are embedded in the financial
// seed. Only the date is rewritten, as DD/MM; every other field is kept.
func sheetItemsJSON(items []models.SheetItem) (string, error) {
	rendered := make([]models.SheetItem, 0, len(items))
	for _, item := range items {
		ts, ok := item.Timestamp()
		if !ok {
			rendered = append(rendered, item)
			continue
		}
		date, err := json.Marshal(formatSheetDate(ts))
		if err != nil {
			return "", fmt.Errorf("failed to encode sheet date: %w", err)
		}
		out := lo.Assign(item, models.SheetItem{"date": date})
		rendered = append(rendered, out)
	}
	b, err := json.Marshal(rendered)
	if err != nil {
		return "", fmt.Errorf("failed to encode sheet items: %w", err)
	}
	return string(b), nil
}

func financialSeed(items []models.SheetItem) (string, error) {
	itemsJSON, err := sheetItemsJSON(items)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(financialSeedTemplate, itemsJSON), nil
}
