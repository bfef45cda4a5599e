// Package seed guarda o catálogo inicial de raças, usado pelo cmd/seed
// (Postgres) e pelo modo memória em desenvolvimento e testes.
package seed

import "pet-web-api/internal/domain/racas"

func ptr(s string) *string { return &s }

// Racas retorna o catálogo de raças.
// Os nomes são mantidos sem acento (e sem pontuação) para fazer round-trip
// com o esquema de slug das URLs (ex: /racas/bulldog-frances -> "Bulldog
// Frances", /racas/pastor-alemao -> "Pastor Alemao").
func Racas() []racas.Raca {
	return []racas.Raca{
		{
			Nome:          "Bulldog Frances",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Companhia"),
			Imagem:        ptr("bulldog-frances.png"),
			Cuidados:      ptr("Exige atenção com a respiração devido ao focinho curto; evite exercícios extenuantes; limpeza das dobras faciais é essencial."),
			Comportamento: ptr("Afetuoso, brincalhão e charmoso; bom com crianças e outros animais; adora companhia humana."),
			Racao:         ptr("Ração para raças braquicefálicas, com croquete adaptado para facilitar a mastigação."),
		},
		{
			Nome:          "Chihuahua",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Companhia"),
			Imagem:        ptr("chihuahua.png"),
			Cuidados:      ptr("Sensível ao frio; cuidado com quedas e impactos; escovação dental regular."),
			Comportamento: ptr("Leal e protetor; precisa de socialização precoce para evitar timidez com estranhos."),
			Racao:         ptr("Ração para raças miniatura, com croquetes pequenos e alta palatabilidade."),
		},
		{
			Nome:          "Lhasa Apso",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Companhia"),
			Imagem:        ptr("lhasa-apso.png"),
			Cuidados:      ptr("Pelo longo exige escovação diária; banhos regulares; limpeza dos olhos e ouvidos."),
			Comportamento: ptr("Independente e reservado, mas muito leal à família; alerta, late para qualquer novidade."),
			Racao:         ptr("Ração para raças pequenas, rica em ômega 3 e 6 para a saúde da pele e da pelagem."),
		},
		{
			Nome:          "Pug",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Companhia"),
			Imagem:        ptr("pug.png"),
			Cuidados:      ptr("Cuidado com superaquecimento em dias quentes; limpeza das dobras faciais; exercícios moderados."),
			Comportamento: ptr("Dócil, charmoso e brincalhão; adora estar perto da família."),
			Racao:         ptr("Ração para raças pequenas com tendência a ganho de peso, rica em fibras."),
		},
		{
			Nome:          "Shih Tzu",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Companhia"),
			Imagem:        ptr("shih-tzu.png"),
			Cuidados:      ptr("Pelo longo requer escovação diária e tosa regular; não tolera bem temperaturas altas."),
			Comportamento: ptr("Afetuoso, extrovertido e um pouco teimoso; excelente cão de companhia."),
			Racao:         ptr("Ração para raças pequenas, com nutrientes para a saúde da pele e do pelo."),
		},
		{
			Nome:          "Yorkshire Terrier",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Companhia"),
			Imagem:        ptr("yorkshire-terrier.png"),
			Cuidados:      ptr("Pelo fino e longo necessita de escovação diária; propenso a tártaro."),
			Comportamento: ptr("Corajoso, enérgico e com personalidade forte; muito apegado à família."),
			Racao:         ptr("Ração para raças mini, rica em vitaminas e minerais."),
		},
		{
			Nome:          "Airedale Terrier",
			Porte:         ptr("Médio"),
			Grupo:         ptr("Terrier"),
			Imagem:        ptr("airedale-terrier.png"),
			Cuidados:      ptr("Pelo duro necessita de tosa trimestral ou stripping; exercícios diários intensos para evitar o tédio."),
			Comportamento: ptr("Inteligente, independente e enérgico; exige treinamento consistente; bom para famílias ativas."),
			Racao:         ptr("Ração para raças médias de alta energia, com proteínas de qualidade e suporte articular."),
		},
		{
			Nome:          "Akita Spitz",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Spitz/Primitivos"),
			Imagem:        ptr("akita-spitz.png"),
			Cuidados:      ptr("Pelo denso exige escovação semanal; socialização desde filhote; exercícios moderados a intensos."),
			Comportamento: ptr("Digno, corajoso e leal; reservado com estranhos, muito apegado à família."),
			Racao:         ptr("Ração para raças grandes, com condroitina e glucosamina para as articulações."),
		},
		{
			Nome:          "Basset Hound",
			Porte:         ptr("Médio"),
			Grupo:         ptr("Farejadores"),
			Imagem:        ptr("basset-hound.png"),
			Cuidados:      ptr("Orelhas longas precisam de limpeza regular; exercícios moderados para evitar obesidade; cuidado com a coluna."),
			Comportamento: ptr("Tranquilo, dócil e amigável; excelente olfato, adora seguir rastros; teimoso no treinamento."),
			Racao:         ptr("Ração para raças médias, com controle de calorias e suporte para pele e ouvidos."),
		},
		{
			Nome:          "Beagle",
			Porte:         ptr("Médio"),
			Grupo:         ptr("Farejadores"),
			Imagem:        ptr("beagle.png"),
			Cuidados:      ptr("Orelhas precisam de limpeza frequente; requer exercícios diários e estímulo do faro."),
			Comportamento: ptr("Curioso, enérgico e amigável; adora farejar e explorar o ambiente."),
			Racao:         ptr("Ração para raças médias ativas, com foco em energia sustentada."),
		},
		{
			Nome:          "Boxer",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Trabalho"),
			Imagem:        ptr("boxer.png"),
			Cuidados:      ptr("Pelo curto de fácil manutenção; exercícios diários intensos; atenção com o calor devido ao focinho curto."),
			Comportamento: ptr("Leal, brincalhão e enérgico; excelente cão de guarda e companheiro familiar."),
			Racao:         ptr("Ração para raças grandes, com proteínas de alta qualidade e taurina para o coração."),
		},
		{
			Nome:          "Bull Terrier",
			Porte:         ptr("Médio"),
			Grupo:         ptr("Terrier"),
			Imagem:        ptr("bull-terrier.png"),
			Cuidados:      ptr("Pelo curto de fácil cuidado; exercícios diários intensos e estímulo mental para evitar o tédio."),
			Comportamento: ptr("Corajoso, brincalhão e de personalidade forte; precisa de socialização e treinamento desde filhote."),
			Racao:         ptr("Ração para raças médias de alta energia, com ingredientes hipoalergênicos para peles sensíveis."),
		},
		{
			Nome:          "Cane Corso",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Guarda"),
			Imagem:        ptr("cane-corso.png"),
			Cuidados:      ptr("Pelo curto de fácil cuidado; treinamento firme e precoce; socialização intensa e espaço para viver."),
			Comportamento: ptr("Protetor, calmo e digno; leal à família, desconfiado com estranhos; exige tutor experiente."),
			Racao:         ptr("Ração para raças gigantes, com suporte articular e controle de cálcio no crescimento."),
		},
		{
			Nome:          "Cocker Spaniel Americano",
			Porte:         ptr("Médio"),
			Grupo:         ptr("Cães de Caça"),
			Imagem:        ptr("cocker-spaniel.png"),
			Cuidados:      ptr("Pelo médio/longo exige escovação regular; limpeza de orelhas frequente; exercícios moderados."),
			Comportamento: ptr("Doce, amigável e alegre; adora brincar e estar com a família; responde melhor a treino positivo."),
			Racao:         ptr("Ração para raças médias, com ômega 3 e 6 para pele e pelo e controle de peso."),
		},
		{
			Nome:          "Dachshund Salsicha",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Farejadores"),
			Imagem:        ptr("dachshund-salsicha.png"),
			Cuidados:      ptr("Cuidado com a coluna: evitar saltos e escadas; exercícios moderados; escovação conforme o tipo de pelo."),
			Comportamento: ptr("Corajoso, curioso e um pouco teimoso; bom cão de alerta; adora cavar e explorar."),
			Racao:         ptr("Ração para raças pequenas, com controle de peso e condroprotetores para a coluna."),
		},
		{
			Nome:          "Dobermann",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Trabalho/Guarda"),
			Imagem:        ptr("dobermann.png"),
			Cuidados:      ptr("Pelo curto de baixa manutenção; exercícios diários intensos; sensível ao frio."),
			Comportamento: ptr("Inteligente, leal, protetor e enérgico; exige socialização precoce e tutor com experiência."),
			Racao:         ptr("Ração para raças grandes, com alto teor proteico e nutrientes para coração e articulações."),
		},
		{
			Nome:          "Golden Retriever",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Cães de Caça"),
			Imagem:        ptr("golden-retriever.png"),
			Cuidados:      ptr("Escovação regular para reduzir a queda de pelo; exercícios diários; adora nadar."),
			Comportamento: ptr("Amigável, inteligente e paciente; excelente com crianças; fácil de treinar."),
			Racao:         ptr("Ração para raças grandes, com suporte articular e controle de peso."),
		},
		{
			Nome:          "Husky Siberiano",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Trabalho"),
			Imagem:        ptr("husky-siberiano.png"),
			Cuidados:      ptr("Pelo denso exige escovação regular; muita atividade física; não tolera bem o calor."),
			Comportamento: ptr("Independente, amigável e enérgico; uiva em vez de latir."),
			Racao:         ptr("Ração para raças grandes ativas, com alta energia e nutrientes para a pelagem."),
		},
		{
			Nome:          "Jack Russell Terrier",
			Porte:         ptr("Pequeno"),
			Grupo:         ptr("Terrier"),
			Imagem:        ptr("jack-russell-terrier.png"),
			Cuidados:      ptr("Pelo fácil de manter; precisa de muita atividade física e mental; treinamento desde cedo."),
			Comportamento: ptr("Corajoso, enérgico e com forte instinto de caça; exige tutor ativo."),
			Racao:         ptr("Ração para raças pequenas de alta demanda energética, rica em proteínas."),
		},
		{
			Nome:          "Labrador Retriever",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Cães de Caça"),
			Imagem:        ptr("labrador.png"),
			Cuidados:      ptr("Pelo curto de fácil manutenção; exercícios diários para evitar obesidade; adora água."),
			Comportamento: ptr("Amigável, extrovertido e dócil; muito leal e gentil com famílias."),
			Racao:         ptr("Ração para raças grandes, com controle de peso e saúde articular."),
		},
		{
			Nome:          "Pastor Alemao",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Pastoreio"),
			Imagem:        ptr("pastor-alemao.png"),
			Cuidados:      ptr("Pelo médio exige escovação regular; treinamento e socialização desde filhote; desafios mentais diários."),
			Comportamento: ptr("Inteligente, leal, corajoso e protetor; excelente cão de trabalho e guarda."),
			Racao:         ptr("Ração para raças grandes ativas, com suporte articular e digestibilidade sensível."),
		},
		{
			Nome:          "Rottweiler",
			Porte:         ptr("Grande"),
			Grupo:         ptr("Trabalho/Guarda"),
			Imagem:        ptr("rottweiler.png"),
			Cuidados:      ptr("Pelo curto de baixa manutenção; socialização e treinamento desde filhote."),
			Comportamento: ptr("Confiante, calmo e protetor; muito leal à família."),
			Racao:         ptr("Ração para raças grandes, com foco em força muscular e saúde óssea."),
		},
		{
			Nome:          "Shiba Inu Spitz",
			Porte:         ptr("Médio"),
			Grupo:         ptr("Spitz/Primitivos"),
			Imagem:        ptr("shiba-inu-spitz.png"),
			Cuidados:      ptr("Pelo denso exige escovação regular na época de muda; exercícios diários; teimoso no treinamento."),
			Comportamento: ptr("Independente, alerta e fiel; reservado com estranhos; personalidade única e autônoma."),
			Racao:         ptr("Ração para raças médias, com nutrientes para pele e pelo e controle de peso."),
		},
	}
}
